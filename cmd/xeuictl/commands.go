package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xeui/pkg/util/xeui"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 判断错误是否由 urfave/cli 的参数解析产生。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"No help topic",
		"Required flag",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// onUsageError 将 urfave/cli 的 flag 解析错误统一转换为 usageError。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// address 是两种宽度地址共有的只读视图。
type address interface {
	FormatString(xeui.Format) string
	Uint64() uint64
}

func parseAddress(width int, s string) (address, error) {
	if width == 64 {
		e, err := xeui.ParseEui64(s)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
	e, err := xeui.ParseEui48(s)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// parseUint 解析十进制或 0x 前缀的十六进制整数。
// 不使用 strconv 的 base 0：前导 0 会被当作八进制。
func parseUint(s string) (uint64, error) {
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		return strconv.ParseUint(rest, 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

// errorKind 返回解析错误的类别名，非 *xeui.ParseError 时返回 "Error"。
func errorKind(err error) string {
	var pe *xeui.ParseError
	if errors.As(err, &pe) {
		return pe.Kind.String()
	}
	return "Error"
}

func widthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "width",
		Aliases: []string{"w"},
		Usage:   "地址宽度 48 或 64（默认取配置，未配置为 48）",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "输出格式 canonical/dash/colon/colon-upper/bare/bare-upper",
	}
}

func createCommands(state *appState) []*cli.Command {
	cmds := []*cli.Command{
		{
			Name:      "parse",
			Aliases:   []string{"p"},
			Usage:     "解析地址并按指定格式输出",
			ArgsUsage: "<text>...",
			Flags:     []cli.Flag{widthFlag(), formatFlag()},
			Action: func(_ context.Context, cmd *cli.Command) error {
				return cmdParse(state, cmd)
			},
		},
		{
			Name:      "from-int",
			Usage:     "十进制或 0x 十六进制整数转地址",
			ArgsUsage: "<n>...",
			Flags:     []cli.Flag{widthFlag(), formatFlag()},
			Action: func(_ context.Context, cmd *cli.Command) error {
				return cmdFromInt(state, cmd)
			},
		},
		{
			Name:      "to-int",
			Usage:     "地址转十进制整数",
			ArgsUsage: "<text>...",
			Flags:     []cli.Flag{widthFlag()},
			Action: func(_ context.Context, cmd *cli.Command) error {
				return cmdToInt(state, cmd)
			},
		},
		{
			Name:      "convert",
			Usage:     "EUI-48 映射为 EUI-64（中间补 00-00）",
			ArgsUsage: "<eui48>...",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(_ context.Context, cmd *cli.Command) error {
				return cmdConvert(state, cmd)
			},
		},
		{
			Name:  "validate",
			Usage: "逐行校验地址（空行和 # 开头的行被跳过）",
			Flags: []cli.Flag{
				widthFlag(),
				&cli.StringFlag{
					Name:  "file",
					Usage: "输入文件，为空时读取标准输入",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return cmdValidate(ctx, state, cmd)
			},
		},
	}
	for _, c := range cmds {
		c.OnUsageError = onUsageError
	}
	return cmds
}

func requireArgs(cmd *cli.Command) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return nil, &usageError{msg: fmt.Sprintf("%s 需要至少一个参数: %s", cmd.Name, cmd.ArgsUsage)}
	}
	return args, nil
}

// cmdParse 逐个解析参数；单个失败不影响其余参数，全部处理完后以退出码 1 报告失败。
func cmdParse(state *appState, cmd *cli.Command) error {
	args, err := requireArgs(cmd)
	if err != nil {
		return err
	}
	width, err := state.width(cmd)
	if err != nil {
		return err
	}
	format, err := state.format(cmd)
	if err != nil {
		return err
	}

	w, errw := cmd.Root().Writer, cmd.Root().ErrWriter
	failed := 0
	for _, s := range args {
		a, err := parseAddress(width, s)
		if err != nil {
			failed++
			fmt.Fprintf(errw, "%q: %v\n", s, err)
			state.logger.Debug("parse failed", slog.String("input", s), slog.String("kind", errorKind(err)))
			continue
		}
		fmt.Fprintln(w, a.FormatString(format))
	}
	return failedExit(failed)
}

func cmdFromInt(state *appState, cmd *cli.Command) error {
	args, err := requireArgs(cmd)
	if err != nil {
		return err
	}
	width, err := state.width(cmd)
	if err != nil {
		return err
	}
	format, err := state.format(cmd)
	if err != nil {
		return err
	}

	// 先校验全部参数，避免输出一半后才报告参数错误
	values := make([]uint64, len(args))
	for i, s := range args {
		v, err := parseUint(s)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("无效整数 %q: %v", s, err)}
		}
		if width == 48 && v > 1<<48-1 {
			return &usageError{msg: fmt.Sprintf("%s 超出 48 位范围", s)}
		}
		values[i] = v
	}

	w := cmd.Root().Writer
	for _, v := range values {
		if width == 64 {
			fmt.Fprintln(w, xeui.Eui64FromUint64(v).FormatString(format))
		} else {
			fmt.Fprintln(w, xeui.Eui48FromUint64(v).FormatString(format))
		}
	}
	return nil
}

func cmdToInt(state *appState, cmd *cli.Command) error {
	args, err := requireArgs(cmd)
	if err != nil {
		return err
	}
	width, err := state.width(cmd)
	if err != nil {
		return err
	}

	w, errw := cmd.Root().Writer, cmd.Root().ErrWriter
	failed := 0
	for _, s := range args {
		a, err := parseAddress(width, s)
		if err != nil {
			failed++
			fmt.Fprintf(errw, "%q: %v\n", s, err)
			continue
		}
		fmt.Fprintln(w, a.Uint64())
	}
	return failedExit(failed)
}

func cmdConvert(state *appState, cmd *cli.Command) error {
	args, err := requireArgs(cmd)
	if err != nil {
		return err
	}
	format, err := state.format(cmd)
	if err != nil {
		return err
	}

	w, errw := cmd.Root().Writer, cmd.Root().ErrWriter
	failed := 0
	for _, s := range args {
		e, err := xeui.ParseEui48(s)
		if err != nil {
			failed++
			fmt.Fprintf(errw, "%q: %v\n", s, err)
			continue
		}
		fmt.Fprintln(w, e.ToEui64().FormatString(format))
	}
	return failedExit(failed)
}

// cmdValidate 逐行校验输入。每行输出 "行号<TAB>ok<TAB>规范格式" 或 "行号<TAB>错误类别<TAB>错误信息"。
// 行首尾空白被去除；地址本身的解析仍然严格。
func cmdValidate(ctx context.Context, state *appState, cmd *cli.Command) error {
	width, err := state.width(cmd)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.Root().Reader
	if path := cmd.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }() //nolint:errcheck // 只读文件
		in = f
	}

	w := cmd.Root().Writer
	scanner := bufio.NewScanner(in)
	lineNo, total, failed := 0, 0, 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++

		a, err := parseAddress(width, line)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%d\t%s\t%v\n", lineNo, errorKind(err), err)
			continue
		}
		fmt.Fprintf(w, "%d\tok\t%s\n", lineNo, a.FormatString(xeui.FormatCanonical))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	state.logger.Info("validate finished",
		slog.Int("width", width),
		slog.Int("total", total),
		slog.Int("invalid", failed),
	)
	return failedExit(failed)
}

func failedExit(failed int) error {
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}
