package cmd

import (
	"fmt"
	"log"

	"github.com/nrad-K/go-payroll/internal/domain/model"
	"github.com/spf13/cobra"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "職種と基本給の一覧を表示します",
	Long:  `設定ファイルの基本給テーブルを雇用区分ごとに表示します。`,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := bootstrap()
		if err != nil {
			log.Fatalf("初期化に失敗: %v", err)
		}

		rules := env.cfg.PayRules()
		out := cmd.OutOrStdout()
		for _, t := range model.EmploymentTypes {
			fmt.Fprintf(out, "%s (%s)\n", t.Label(), t)
			for _, title := range rules.TitlesFor(t) {
				base, _ := rules.BaseSalary(t, title)
				fmt.Fprintf(out, "  %-26s: %s%.0f\n", title, env.cfg.CurrencySymbol, base)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(titlesCmd)
}
