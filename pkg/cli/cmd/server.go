package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LENAX/dag-checker/pkg/api"
	"github.com/LENAX/dag-checker/pkg/cli/output"
	"github.com/LENAX/dag-checker/pkg/config"
	"github.com/LENAX/dag-checker/pkg/logging"
)

var (
	serverPort int
	configPath string
	serverHost string
)

// defaultConfigPaths 未指定 --config 时依次查找
var defaultConfigPaths = []string{
	"./configs/dag-checker.yaml",
	"./config/dag-checker.yaml",
	"./dag-checker.yaml",
}

// serverCmd server子命令
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "服务管理命令",
	Long:  `管理DAG Checker HTTP API服务。`,
}

// serverStartCmd 启动服务
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "启动HTTP API服务",
	Long: `启动DAG Checker HTTP API服务。

示例：
  # 使用默认配置启动
  dag-checker server start

  # 指定端口启动
  dag-checker server start --port 8000

  # 指定配置文件启动
  dag-checker server start --config ./configs/dag-checker.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadServerConfig(cmd)
		if err != nil {
			output.Error("加载配置失败: %v", err)
			return err
		}

		logger := logging.New(os.Stderr, cfg.LogLevel())
		apiServer := api.NewAPIServer(cfg, logger, Version)

		// 等待中断信号
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		output.Success("DAG Checker Server started on %s", apiServer.Addr())
		if err := apiServer.Run(ctx, nil); err != nil {
			output.Error("API服务器错误: %v", err)
			return err
		}

		output.Success("服务已停止")
		return nil
	},
}

// loadServerConfig 加载配置文件并应用命令行覆盖
func loadServerConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	path := configPath
	if path == "" {
		for _, p := range defaultConfigPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		output.Info("使用配置文件: %s", path)
	} else {
		output.Warning("未找到配置文件，使用默认配置")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("host") {
		cfg.DAGChecker.Server.Host = serverHost
	}
	if cmd.Flags().Changed("port") {
		cfg.DAGChecker.Server.Port = serverPort
	}
	if err := config.ValidateServer(cfg.Server()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	serverStartCmd.Flags().IntVarP(&serverPort, "port", "p", config.DefaultPort, "监听端口")
	serverStartCmd.Flags().StringVarP(&serverHost, "host", "H", config.DefaultHost, "监听地址")
	serverStartCmd.Flags().StringVarP(&configPath, "config", "c", "", "配置文件路径")

	serverCmd.AddCommand(serverStartCmd)
}
