package model

import (
	"fmt"
	"strings"
)

// EmploymentTypeは雇用区分を表します。
type EmploymentType string

const (
	FullTime EmploymentType = "fulltime"
	PartTime EmploymentType = "parttime"
)

// EmploymentTypesは表示順に並べた全ての雇用区分です。
var EmploymentTypes = []EmploymentType{FullTime, PartTime}

func (t EmploymentType) String() string {
	return string(t)
}

// Labelは集計表で使う表示名を返します。
func (t EmploymentType) Label() string {
	switch t {
	case FullTime:
		return "Full-time"
	case PartTime:
		return "Part-time"
	default:
		return "Unknown"
	}
}

// ParseEmploymentTypeは入力文字列を雇用区分に変換します。
func ParseEmploymentType(s string) (EmploymentType, error) {
	switch EmploymentType(strings.ToLower(strings.TrimSpace(s))) {
	case FullTime:
		return FullTime, nil
	case PartTime:
		return PartTime, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidCategory)
	}
}

// JobTitleは職種を表します。
type JobTitle string

const (
	Barista      JobTitle = "Barista"
	Cashier      JobTitle = "Cashier"
	Supervisor   JobTitle = "Supervisor"
	KitchenStaff JobTitle = "Kitchen Staff"
	Cleaner      JobTitle = "Cleaner"
	Waiter       JobTitle = "Waiter/waitress"
)

// JobTitlesは職種メニューの表示順です。
var JobTitles = []JobTitle{Barista, Cashier, KitchenStaff, Cleaner, Waiter, Supervisor}

func (j JobTitle) String() string {
	return string(j)
}

// EmploymentTypeは職種が属する雇用区分を返します。カタログ外の職種はfalse。
func (j JobTitle) EmploymentType() (EmploymentType, bool) {
	switch j {
	case Barista, Cashier, Supervisor:
		return FullTime, true
	case KitchenStaff, Cleaner, Waiter:
		return PartTime, true
	default:
		return "", false
	}
}

// ParseJobTitleは大文字小文字を区別せずにカタログの職種と照合します。
func ParseJobTitle(s string) (JobTitle, error) {
	trimmed := strings.TrimSpace(s)
	for _, title := range JobTitles {
		if strings.EqualFold(trimmed, string(title)) {
			return title, nil
		}
	}
	return JobTitle(trimmed), fmt.Errorf("%q: %w", s, ErrUnknownJobTitle)
}

// JobTitlesForは指定した雇用区分で有効な職種を返します。
func JobTitlesFor(t EmploymentType) []JobTitle {
	titles := make([]JobTitle, 0, 3)
	for _, title := range JobTitles {
		if category, ok := title.EmploymentType(); ok && category == t {
			titles = append(titles, title)
		}
	}
	return titles
}
