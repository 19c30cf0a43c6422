// xeuictl 是 EUI-48/EUI-64 地址的命令行工具：解析、格式化、整数互转、映射与批量校验。
//
// 用法:
//
//	xeuictl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config     配置文件路径（.yaml/.yml/.json，可选）
//	--log-level      日志级别 debug/info/warn/error (默认: info)
//	--log-format     日志格式 text/json (默认: text)
//	--log-file       日志文件路径，按大小轮转 (默认: stderr)
//
// 命令:
//
//	parse <text>...      解析地址并按 --format 输出
//	from-int <n>...      十进制或 0x 十六进制整数转地址
//	to-int <text>...     地址转十进制整数
//	convert <eui48>...   EUI-48 映射为 EUI-64
//	validate             逐行校验文件或标准输入中的地址
//
// 命令行选项优先于配置文件，配置文件优先于默认值。
//
// 退出码:
//
//	0: 全部成功
//	1: 至少一个地址无效，或配置/文件读取失败
//	2: 参数错误（未知 flag、非法宽度或格式、整数越界等）
//
// 示例:
//
//	xeuictl parse 4d:7e:54:97:2e:ef                 # 4D-7E-54-97-2E-EF
//	xeuictl parse --format colon 4D7E54972EEF       # 4d:7e:54:97:2e:ef
//	xeuictl from-int 85204980412143                 # 4D-7E-54-97-2E-EF
//	xeuictl to-int --width 64 4d7e540000972eef      # 5583992946972634863
//	xeuictl convert 4D-7E-54-97-2E-EF               # 4D-7E-54-00-00-97-2E-EF
//	xeuictl validate --file devices.txt
//	cat devices.txt | xeuictl -c xeuictl.yaml validate
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// createApp 创建 CLI 应用。state 在 Before 中填充，供各子命令使用。
func createApp(state *appState, stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xeuictl",
		Usage:     "EUI-48/EUI-64 地址解析、格式化与校验工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 debug/info/warn/error",
				Value: defaultLogLevel,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 text/json",
				Value: defaultLogFormat,
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径（按大小轮转），为空时输出到 stderr",
			},
		},
		Commands:     createCommands(state),
		OnUsageError: onUsageError,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, state.init(cmd, stderr)
		},
		After: func(_ context.Context, _ *cli.Command) error {
			return state.close()
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
	}
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	state := &appState{}
	app := createApp(state, stdin, stdout, stderr)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			// flag 解析器已向输出写入错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
