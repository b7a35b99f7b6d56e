package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/LENAX/dag-checker/pkg/api/dto"
)

// Writer 输出目标，默认为 color.Output（stdout）
var Writer io.Writer = color.Output

// PrintJSON 输出JSON格式
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Success 输出成功消息
func Success(format string, args ...interface{}) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(Writer, "✅ "+format+"\n", args...)
}

// Error 输出错误消息
func Error(format string, args ...interface{}) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(Writer, "❌ "+format+"\n", args...)
}

// Info 输出信息
func Info(format string, args ...interface{}) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintf(Writer, "ℹ️  "+format+"\n", args...)
}

// Warning 输出警告
func Warning(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(Writer, "⚠️  "+format+"\n", args...)
}

// PrintPipelineResult 输出Pipeline检测结果
func PrintPipelineResult(r dto.ParsePipelineResponse) {
	label := color.New(color.FgCyan, color.Bold)
	label.Fprint(Writer, "Nodes: ")
	fmt.Fprintln(Writer, r.NumNodes)
	label.Fprint(Writer, "Edges: ")
	fmt.Fprintln(Writer, r.NumEdges)

	if r.IsDAG {
		Success("Pipeline是有向无环图 (DAG)")
	} else {
		Error("Pipeline存在环，不是DAG")
	}
}

// PrintFieldErrors 输出校验错误
func PrintFieldErrors(errs []dto.FieldError) {
	for _, fe := range errs {
		Error("%s: %s", fe.Field, fe.Error)
	}
}
