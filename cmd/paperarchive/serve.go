package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonwraymond/paperarchive/registry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the archive to MCP clients",
	Long: `Serve exposes the loaded archive as an MCP server with the built-in
tools search_papers, list_dates, get_paper, and daily_overview.

Transports: stdio (default, one JSON-RPC message per line), http
(streamable HTTP on --addr), and sse (Server-Sent Events on --addr).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		reg := registry.New(eng, registry.Config{
			ServerInfo: registry.ServerInfo{
				Name:    "paperarchive",
				Version: version,
			},
			DefaultLimit: viper.GetInt("serve.limit"),
		})

		transport, _ := cmd.Flags().GetString("transport")
		addr, _ := cmd.Flags().GetString("addr")

		switch transport {
		case "stdio":
			return registry.ServeStdio(cmd.Context(), reg)
		case "http":
			fmt.Fprintf(os.Stderr, "serving MCP over HTTP on %s\n", addr)
			return http.ListenAndServe(addr, registry.ServeHTTP(reg))
		case "sse":
			fmt.Fprintf(os.Stderr, "serving MCP over SSE on %s\n", addr)
			return http.ListenAndServe(addr, registry.ServeSSE(reg))
		default:
			return fmt.Errorf("unknown transport %q (want stdio, http, or sse)", transport)
		}
	},
}

func init() {
	serveCmd.Flags().String("transport", "stdio", "transport: stdio, http, or sse")
	serveCmd.Flags().String("addr", ":8321", "listen address for http and sse transports")
	serveCmd.Flags().Int("limit", 0, "default result cap for search_papers (0 = unlimited)")
	_ = viper.BindPFlag("serve.limit", serveCmd.Flags().Lookup("limit"))

	rootCmd.AddCommand(serveCmd)
}
