package models

import "time"

var shortWeekdays = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// RelativeStamp renders when a message was sent the way the inbox does: the
// clock time today, "Ayer" yesterday, the weekday within a week, else the date.
func RelativeStamp(sent, now time.Time) string {
	sent = sent.In(now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(sent.Year(), sent.Month(), sent.Day(), 0, 0, 0, 0, now.Location())

	switch days := int(today.Sub(day).Hours() / 24); {
	case days <= 0:
		return sent.Format("15:04")
	case days == 1:
		return "Ayer"
	case days < 7:
		return shortWeekdays[sent.Weekday()]
	default:
		return sent.Format("02/01/2006")
	}
}
