package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nrad-K/go-payroll/internal/config"
	"github.com/nrad-K/go-payroll/internal/infra"
	"github.com/nrad-K/go-payroll/internal/logger"
	"github.com/nrad-K/go-payroll/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	configPath string
	format     string
)

// rootCmdは、アプリケーションのエントリーポイントとなるルートコマンドです。
// サブコマンドなしで起動すると対話メニューを開始します。
var rootCmd = &cobra.Command{
	Use:   "go-payroll",
	Short: "従業員の給与を計算し、帳票を出力するツールです。",
	Long: `go-payrollは、正社員とパートタイムの従業員を対話形式で登録し、
雇用区分別レポート、全従業員レポート、月次の支払い集計を出力します。`,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := bootstrap()
		if err != nil {
			log.Fatalf("初期化に失敗: %v", err)
		}

		// repository初期化
		repo := infra.NewWorkerRegistry(env.cfg.Capacity, env.logger)
		terminal := infra.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

		payroll := usecase.NewPayrollUseCase(usecase.PayrollArgs{
			Cfg:      env.cfg,
			Repo:     repo,
			Terminal: terminal,
			Renderer: env.renderer,
			Logger:   env.logger,
		})
		menu := usecase.NewMenuUseCase(usecase.MenuArgs{
			Terminal: terminal,
			Payroll:  payroll,
			Logger:   env.logger,
		})

		if err := menu.Run(cmd.Context()); err != nil {
			env.logger.Error("メニューの実行中にエラーが発生しました", "error", err)
			os.Exit(1)
		}
	},
}

// appEnvは、各コマンドが共有する設定とロガーとレンダラーです。
type appEnv struct {
	cfg      config.PayrollConfig
	logger   logger.AppLogger
	renderer infra.ReportRenderer
}

// bootstrapは、.envと設定ファイルを読み込み、ロガーとレンダラーを用意します。
// --configが空の場合は環境変数PAYROLL_CONFIGを参照し、それも空なら標準設定を使います。
func bootstrap() (appEnv, error) {
	// .envがなくても環境変数だけで起動できる
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		path = os.Getenv("PAYROLL_CONFIG")
	}

	cfg, err := config.LoadPayrollConfig(path)
	if err != nil {
		return appEnv{}, err
	}
	if level := os.Getenv("PAYROLL_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	// 帳票は標準出力に出すため、ログは標準エラー出力へ
	appLogger := logger.NewTextLogger(os.Stderr, cfg.LogLevel)

	renderer, err := newRenderer(format, cfg.CurrencySymbol)
	if err != nil {
		return appEnv{}, err
	}

	appLogger.Debug("設定を読み込みました", "config", path, "format", format, "capacity", cfg.Capacity)
	return appEnv{cfg: cfg, logger: appLogger, renderer: renderer}, nil
}

// newRendererは、出力形式の名前から帳票レンダラーを生成します。
func newRenderer(name, currency string) (infra.ReportRenderer, error) {
	switch name {
	case "", "table":
		return infra.NewTableRenderer(currency), nil
	case "csv":
		return infra.NewCSVExporter(), nil
	default:
		return nil, fmt.Errorf("出力形式 %q には対応していません (table|csv)", name)
	}
}

// Executeは、全てのサブコマンドをルートコマンドに追加し、フラグを適切に設定します。
// この関数はmain.main()から呼び出され、rootCmdに対して一度だけ実行される必要があります。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "設定ファイル(YAML)のパス")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "帳票の出力形式 (table|csv)")
}
