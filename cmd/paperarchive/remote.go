package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/paperarchive/registry"
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Query a remote archive MCP server",
}

var remoteToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the remote server's tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := remoteClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		tools, err := client.ListTools(cmd.Context())
		if err != nil {
			return err
		}
		for _, tool := range tools {
			fmt.Printf("%s\t%s\n", tool.Name, tool.Description)
		}
		return nil
	},
}

var remoteCallCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke a tool on the remote server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := remoteClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		var toolArgs map[string]any
		if raw, _ := cmd.Flags().GetString("args"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &toolArgs); err != nil {
				return fmt.Errorf("invalid --args JSON: %w", err)
			}
		}

		result, err := client.CallTool(cmd.Context(), args[0], toolArgs)
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(result)
	},
}

func remoteClient(cmd *cobra.Command) (*registry.Client, error) {
	url, _ := cmd.Flags().GetString("url")
	client := registry.NewClient(registry.ClientConfig{URL: url})
	if err := client.Connect(cmd.Context()); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}
	return client, nil
}

func init() {
	remoteCmd.PersistentFlags().String("url", "http://localhost:8321", "remote server URL (http://, sse://, stdio://)")
	remoteCallCmd.Flags().String("args", "", "tool arguments as a JSON object")

	remoteCmd.AddCommand(remoteToolsCmd)
	remoteCmd.AddCommand(remoteCallCmd)
	rootCmd.AddCommand(remoteCmd)
}
