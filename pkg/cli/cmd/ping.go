package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LENAX/dag-checker/pkg/cli/client"
	"github.com/LENAX/dag-checker/pkg/cli/output"
)

// pingCmd ping命令
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "检查服务是否存活",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.New(serverURL).Ping(cmd.Context())
		if err != nil {
			output.Error("服务不可用: %v", err)
			return err
		}

		if outputJSON {
			return output.PrintJSON(resp)
		}
		output.Success("%s -> Ping: %s", serverURL, resp.Ping)
		return nil
	},
}
