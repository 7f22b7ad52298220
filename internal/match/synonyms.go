package match

import "strings"

// scheduleTerms is the vocabulary visitors use for opening hours, closed
// days, and admission fees. All of it is answered by the usage guide page,
// whose label none of these words resemble.
var scheduleTerms = []string{
	"운영시간",
	"관람시간",
	"개관시간",
	"폐관시간",
	"관람요금",
	"관람료",
	"입장료",
	"요금",
	"관람일",
	"운영일",
	"개관일",
	"휴관일",
	"휴무일",
	"휴관",
	"휴무",
	"운영일정",
	"개관일정",
}

// hasScheduleTerm reports whether the normalized query mentions any
// schedule or fee term.
func hasScheduleTerm(q string) bool {
	for _, term := range scheduleTerms {
		if strings.Contains(q, term) {
			return true
		}
	}
	return false
}
