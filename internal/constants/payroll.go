package constants

import "github.com/nrad-K/go-payroll/internal/domain/model"

// GetCategoryCSVHeadersは、雇用区分別レポートのCSVヘッダーを返します。
func GetCategoryCSVHeaders(t model.EmploymentType) []string {
	if t == model.PartTime {
		return []string{
			"entry_id", "id", "name", "job_title", "type",
			"working_hours", "net_salary",
		}
	}
	return []string{
		"entry_id", "id", "name", "job_title", "type",
		"sick_days", "extra_hours", "before_tax", "tax_cost", "net_salary",
	}
}

// GetCombinedCSVHeadersは、全員レポートのCSVヘッダーを返します。
func GetCombinedCSVHeaders() []string {
	return []string{"entry_id", "id", "name", "job_title", "type", "net_salary"}
}

// GetSummaryCSVHeadersは、月次集計のCSVヘッダーを返します。
func GetSummaryCSVHeaders() []string {
	return []string{"worker_type", "count", "total_net_salary"}
}

// GetMenuOptionsは、メインメニューの選択肢を番号順に返します。
func GetMenuOptions() []string {
	return []string{
		"Add Workers",
		"View Worker Reports",
		"View All Workers",
		"Calculate Total Monthly Payment for All Workers",
		"Exit",
	}
}

const (
	MenuAddWorkers     = 1
	MenuCategoryReport = 2
	MenuCombinedReport = 3
	MenuMonthlySummary = 4
	MenuExit           = 5
)
