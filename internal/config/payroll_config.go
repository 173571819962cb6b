package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/nrad-K/go-payroll/internal/domain/model"
)

// BaseSalaryConfigは基本給テーブルの1行です。
type BaseSalaryConfig struct {
	EmploymentType string  `yaml:"employment_type" validate:"required,oneof=fulltime parttime"`
	JobTitle       string  `yaml:"job_title" validate:"required,min=1"`
	Amount         float64 `yaml:"amount" validate:"gte=0"`
}

// PayrollConfigは給与計算ツールの動作設定をまとめる構造体です。
type PayrollConfig struct {
	Capacity           int                `yaml:"capacity" validate:"min=1,max=100000"`             // 登録できる従業員数の上限
	StandardDays       int                `yaml:"standard_days" validate:"min=1,max=31"`            // 時給換算に使う月の日数
	HoursPerDay        int                `yaml:"hours_per_day" validate:"min=1,max=24"`            // 時給換算に使う1日の時間数
	FullTimeHours      float64            `yaml:"full_time_hours" validate:"gt=0"`                  // 正社員の所定労働時間
	TaxRate            float64            `yaml:"tax_rate" validate:"gte=0,lt=1"`                   // 正社員の税率
	SocialSecurityTax  float64            `yaml:"social_security_tax" validate:"gte=0"`             // 社会保険の定額分
	OvertimeMultiplier float64            `yaml:"overtime_multiplier" validate:"gte=1,max=10"`      // 残業代の倍率
	SickPenaltyRate    float64            `yaml:"sick_penalty_rate" validate:"gte=0,lt=1"`          // 病欠と残業が重なった場合の減額率
	SickPenaltyDays    int                `yaml:"sick_penalty_days" validate:"min=1"`               // 減額対象になる病欠日数
	SickBonus          []float64          `yaml:"sick_bonus" validate:"required,min=1,dive,gte=0"`  // 病欠日数ごとの皆勤手当
	BaseSalaries       []BaseSalaryConfig `yaml:"base_salaries" validate:"required,min=1,dive"`     // 雇用区分と職種ごとの基本給
	StrictJobTitles    bool               `yaml:"strict_job_titles"`                                // 雇用区分に合わない職種を入力時に拒否する
	SortInPlace        bool               `yaml:"sort_in_place"`                                    // 全員レポートのソート結果を登録順に反映する
	LogLevel           string             `yaml:"log_level" validate:"oneof=debug info warn error"` // ログレベル
	CurrencySymbol     string             `yaml:"currency_symbol" validate:"required,max=3"`        // 金額の前に付ける記号
}

// バリデーターのインスタンス
var validate = validator.New()

// DefaultPayrollConfigは設定ファイルがない場合の標準設定を返します。
func DefaultPayrollConfig() PayrollConfig {
	rules := model.DefaultPayRules()

	salaries := make([]BaseSalaryConfig, 0, len(model.JobTitles))
	for _, title := range model.JobTitles {
		t, _ := title.EmploymentType()
		base, _ := rules.BaseSalary(t, title)
		salaries = append(salaries, BaseSalaryConfig{
			EmploymentType: t.String(),
			JobTitle:       title.String(),
			Amount:         base,
		})
	}

	return PayrollConfig{
		Capacity:           100,
		StandardDays:       rules.StandardDays,
		HoursPerDay:        rules.HoursPerDay,
		FullTimeHours:      rules.FullTimeHours,
		TaxRate:            rules.TaxRate,
		SocialSecurityTax:  rules.SocialSecurityTax,
		OvertimeMultiplier: rules.OvertimeMultiplier,
		SickPenaltyRate:    rules.SickPenaltyRate,
		SickPenaltyDays:    rules.SickPenaltyDays,
		SickBonus:          append([]float64(nil), rules.SickBonus...),
		BaseSalaries:       salaries,
		StrictJobTitles:    true,
		SortInPlace:        false,
		LogLevel:           "warn",
		CurrencySymbol:     "$",
	}
}

// LoadPayrollConfigはYAMLファイルから設定を読み込みます。
// ファイルに書かれていない項目は標準設定の値が残ります。pathが空なら標準設定を返します。
func LoadPayrollConfig(path string) (PayrollConfig, error) {
	cfg := DefaultPayrollConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.ReadFile(path)
	if err != nil {
		return PayrollConfig{}, fmt.Errorf("設定ファイルを読み込めませんでした: %w", err)
	}

	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return PayrollConfig{}, fmt.Errorf("YAMLの解析に失敗しました: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return PayrollConfig{}, err
	}

	return cfg, nil
}

// Validateはタグによる検証に加えて項目間の整合性を確認します。
func (c PayrollConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("設定のバリデーションに失敗しました: %w", err)
	}

	// カスタムバリデーション
	for i := 1; i < len(c.SickBonus); i++ {
		if c.SickBonus[i] > c.SickBonus[i-1] {
			return errors.New("sick_bonusは病欠日数が増えるほど小さくなる必要があります")
		}
	}

	seen := make(map[model.SalaryKey]struct{}, len(c.BaseSalaries))
	for _, entry := range c.BaseSalaries {
		t, err := model.ParseEmploymentType(entry.EmploymentType)
		if err != nil {
			return fmt.Errorf("base_salariesの雇用区分が不正です: %w", err)
		}
		title, err := model.ParseJobTitle(entry.JobTitle)
		if err != nil {
			return fmt.Errorf("base_salariesの職種が不正です: %w", err)
		}
		if category, _ := title.EmploymentType(); category != t {
			return fmt.Errorf("職種 %s は %s では登録できません", title, t)
		}
		key := model.SalaryKey{Type: t, Title: title}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("base_salariesに %s/%s が重複しています", t, title)
		}
		seen[key] = struct{}{}
	}

	if c.StrictJobTitles {
		for _, t := range model.EmploymentTypes {
			if len(c.PayRules().TitlesFor(t)) == 0 {
				return fmt.Errorf("strict_job_titlesが有効な場合、%s の基本給を1件以上設定する必要があります", t)
			}
		}
	}

	return nil
}

// PayRulesは設定値を給与計算ルールに変換します。Validate済みであることが前提です。
func (c PayrollConfig) PayRules() model.PayRules {
	salaries := make(map[model.SalaryKey]float64, len(c.BaseSalaries))
	for _, entry := range c.BaseSalaries {
		t, _ := model.ParseEmploymentType(entry.EmploymentType)
		title, _ := model.ParseJobTitle(entry.JobTitle)
		salaries[model.SalaryKey{Type: t, Title: title}] = entry.Amount
	}

	return model.PayRules{
		BaseSalaries:       salaries,
		StandardDays:       c.StandardDays,
		HoursPerDay:        c.HoursPerDay,
		FullTimeHours:      c.FullTimeHours,
		TaxRate:            c.TaxRate,
		SocialSecurityTax:  c.SocialSecurityTax,
		OvertimeMultiplier: c.OvertimeMultiplier,
		SickBonus:          append([]float64(nil), c.SickBonus...),
		SickPenaltyRate:    c.SickPenaltyRate,
		SickPenaltyDays:    c.SickPenaltyDays,
	}
}
