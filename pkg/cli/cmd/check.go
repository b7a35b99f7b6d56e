package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/LENAX/dag-checker/pkg/api/dto"
	"github.com/LENAX/dag-checker/pkg/cli/client"
	"github.com/LENAX/dag-checker/pkg/cli/output"
	"github.com/LENAX/dag-checker/pkg/core/dag"
)

// ErrNotDAG --fail-on-cycle 时Pipeline存在环
var ErrNotDAG = errors.New("pipeline is not a DAG")

// invalidPipelineError 本地校验失败，携带字段错误
type invalidPipelineError struct {
	fields []dto.FieldError
}

func (e *invalidPipelineError) Error() string {
	return fmt.Sprintf("invalid pipeline file: %d field error(s)", len(e.fields))
}

var (
	checkRemote bool
	failOnCycle bool
)

// checkCmd check命令
var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "检测Pipeline文件是否为DAG",
	Long: `读取JSON格式的Pipeline文件（与 POST /pipelines/parse 请求体一致），输出节点数、边数和是否为DAG。
文件为 - 时从标准输入读取。

示例：
  dag-checker check pipeline.json
  cat pipeline.json | dag-checker check - --remote`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := readPipelineFile(args[0], cmd.InOrStdin())
		if err != nil {
			var invalid *invalidPipelineError
			if errors.As(err, &invalid) {
				output.PrintFieldErrors(invalid.fields)
			} else {
				output.Error("读取Pipeline失败: %v", err)
			}
			return err
		}

		var result dto.ParsePipelineResponse
		if checkRemote {
			resp, err := client.New(serverURL).ParsePipeline(cmd.Context(), *req)
			if err != nil {
				var ve *client.ValidationError
				if errors.As(err, &ve) {
					output.PrintFieldErrors(ve.Fields)
				} else {
					output.Error("请求失败: %v", err)
				}
				return err
			}
			result = *resp
		} else {
			result = dto.NewParsePipelineResponse(dag.Check(req.ToGraph()))
		}

		if outputJSON {
			if err := output.PrintJSON(result); err != nil {
				return err
			}
		} else {
			output.PrintPipelineResult(result)
		}

		if failOnCycle && !result.IsDAG {
			return ErrNotDAG
		}
		return nil
	},
}

// readPipelineFile 读取并校验Pipeline文件，规则与HTTP接口一致
func readPipelineFile(path string, stdin io.Reader) (*dto.ParsePipelineRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s failed: %w", path, err)
	}

	var req dto.ParsePipelineRequest
	if err := dto.BindParsePipelineRequest(data, &req); err != nil {
		return nil, &invalidPipelineError{fields: dto.TranslateBindError(err, &req)}
	}
	return &req, nil
}

func init() {
	checkCmd.Flags().BoolVarP(&checkRemote, "remote", "r", false, "通过 --server 指定的服务检测")
	checkCmd.Flags().BoolVar(&failOnCycle, "fail-on-cycle", false, "不是DAG时返回非0退出码")
}
