package affinity

import "time"

// Fixed component weights for the overall score.
const (
	WeightCollaboration = 0.35
	WeightCommunication = 0.30
	WeightSocial        = 0.20
	WeightPersonal      = 0.15
)

// CollaborationScore converts total overlap months on shared projects into a
// score: 5 points per month, capped at 100.
func CollaborationScore(totalOverlapMonths float64) float64 {
	if totalOverlapMonths <= 0 {
		return 0
	}
	return clamp(totalOverlapMonths * 5)
}

// CommunicationScore combines message volume (half a point per message,
// capped at 50) with responsiveness (50 minus a tenth of the average
// response time in minutes, floored at 0). The sum is clamped to 100.
func CommunicationScore(totalMessages int, avgResponseMinutes float64) float64 {
	messageScore := float64(totalMessages) / 2
	if messageScore > 50 {
		messageScore = 50
	}
	if messageScore < 0 {
		messageScore = 0
	}
	responseScore := 50 - avgResponseMinutes/10
	if responseScore < 0 {
		responseScore = 0
	}
	return clamp(messageScore + responseScore)
}

// SocialScore awards 20 points per shared company event, capped at 100.
func SocialScore(sharedEvents int) float64 {
	if sharedEvents <= 0 {
		return 0
	}
	return clamp(float64(sharedEvents) * 20)
}

// PersonalScore awards 15 points per payday contact and 20 per vacation-day
// contact, capped at 100.
func PersonalScore(paydayContacts, vacationContacts int) float64 {
	score := float64(paydayContacts)*15 + float64(vacationContacts)*20
	return clamp(score)
}

// Overall is the fixed weighted sum of the four component scores.
func Overall(collaboration, communication, social, personal float64) float64 {
	sum := WeightCollaboration*collaboration +
		WeightCommunication*communication +
		WeightSocial*social +
		WeightPersonal*personal
	return clamp(sum)
}

// OverlapCalendarMonths computes how long two year-month ranges intersect:
// min(end1,end2) minus max(start1,start2) in whole calendar months, floored
// at zero.
func OverlapCalendarMonths(start1, end1, start2, end2 time.Time) float64 {
	start := start1
	if start2.After(start) {
		start = start2
	}
	end := end1
	if end2.Before(end) {
		end = end2
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return float64(months)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
