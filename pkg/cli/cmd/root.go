package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// 全局变量
	serverURL  string
	outputJSON bool
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "dag-checker",
	Short: "DAG Checker - Pipeline有向无环图检测服务",
	Long: `DAG Checker 接收节点和有向边组成的Pipeline，统计节点/边数量并判断是否为有向无环图（DAG）。

支持的功能：
  - 启动HTTP API服务（GET /、POST /pipelines/parse）
  - 本地或远程检测Pipeline文件
  - 检查服务是否存活

使用示例：
  # 启动HTTP服务
  dag-checker server start --port 8000

  # 本地检测Pipeline文件
  dag-checker check pipeline.json

  # 通过服务检测
  dag-checker check pipeline.json --remote -s http://localhost:8000`,
	SilenceUsage: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// 全局参数
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:8000", "DAG Checker服务器地址")
	rootCmd.PersistentFlags().BoolVarP(&outputJSON, "json", "j", false, "使用JSON格式输出")

	// 添加子命令
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(versionCmd)
}
