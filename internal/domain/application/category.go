package application

import "strings"

// Category is the admin list grouping of an application type.
type Category string

const (
	CategoryLeave        Category = "휴가"
	CategoryOutside      Category = "외근"
	CategoryBusinessTrip Category = "출장"
	CategoryOvertime     Category = "연장"
	CategoryCorrection   Category = "수정"
	CategoryOther        Category = "기타"
)

type categoryRule struct {
	category Category
	keywords []string
}

// Rules are evaluated in order and the first match wins, so a type
// containing both "휴가" and "정정" is a leave.
var categoryRules = []categoryRule{
	{CategoryLeave, []string{"휴가", "연차"}},
	{CategoryOutside, []string{"외근"}},
	{CategoryBusinessTrip, []string{"출장"}},
	{CategoryOvertime, []string{"연장", "근무"}},
	{CategoryCorrection, []string{"수정", "정정"}},
}

// Categorize classifies an application type by substring match.
func Categorize(applicationType string) Category {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(applicationType, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
