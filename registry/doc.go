// Package registry exposes a paper archive engine as an MCP server.
//
// Registry wraps an engine.Engine and publishes a fixed set of tools over
// the MCP protocol (initialize, tools/list, tools/call):
//
//   - search_papers: filtered, ranked, date-grouped paper listing
//   - list_dates: the archive's date index with prev/next navigation
//   - get_paper: one paper's full record by id
//   - daily_overview: the parsed daily summary for a date
//
// Additional tools can be registered with Register. Three transports are
// provided: stdio (ServeStdio), streamable HTTP (ServeHTTP), and SSE
// (ServeSSE). Client connects to a remote archive server over the same
// transports.
//
// Example usage:
//
//	snap, _ := corpus.LoadSnapshot("data")
//	eng, _ := engine.New(snap, engine.Options{})
//
//	reg := registry.New(eng, registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "paperarchive",
//	        Version: "1.0.0",
//	    },
//	})
//
//	registry.ServeStdio(ctx, reg)
package registry
