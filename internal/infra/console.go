package infra

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Terminalは対話入力の読み取りと画面出力を行います。
type Terminal interface {
	Prompt(message string) (string, error)
	Printf(format string, args ...any)
	Writer() io.Writer
}

type console struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConsoleは行単位で入力を読むTerminalを生成します。
// 入力元を差し替えれば、テストから用意した入力を流し込めます。
func NewConsole(in io.Reader, out io.Writer) Terminal {
	return &console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Promptはmessageを表示して1行読み取り、前後の空白を除いて返します。
// 行の長さに上限はありません。改行のない最終行もそのまま返し、入力が尽きた場合はio.EOFを返します。
func (c *console) Prompt(message string) (string, error) {
	fmt.Fprint(c.out, message)

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("入力の読み取りに失敗しました: %w", err)
		}
		if line == "" {
			fmt.Fprintln(c.out)
			return "", io.EOF
		}
	}

	return strings.TrimSpace(line), nil
}

func (c *console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) Writer() io.Writer {
	return c.out
}
