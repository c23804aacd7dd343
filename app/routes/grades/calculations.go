package grades

import (
	"fmt"
	"math"
	"strconv"

	"classtrack/app/models"
)

// FinalGrade computes a student's weighted final grade. Each task
// contributes grade * percentage / 100, with the grade looked up by the
// composite key "{taskName}-{percentage}"; a missing or non-numeric entry
// counts as 0. Three absences zero the whole grade: the deduction is a step
// function, not a proportional scale.
func FinalGrade(grades map[string]string, tasks []*models.Task, attendance []*models.Attendance) float64 {
	notHereCount := 0
	for _, rec := range attendance {
		if rec.Status == models.StatusNotHere {
			notHereCount++
		}
	}

	deduction := 0.0
	if notHereCount/3 >= 1 {
		deduction = 1.0
	}

	var final float64
	for _, task := range tasks {
		key := fmt.Sprintf("%s-%d", task.TaskName, task.Percentage)
		grade, err := strconv.ParseFloat(grades[key], 64)
		if err != nil {
			grade = 0
		}
		final += grade * float64(task.Percentage) / 100 * (1 - deduction)
	}

	return math.Round(final*100) / 100
}

// ClassAverage is the arithmetic mean of the given final grades, rounded to
// 2 decimals; 0 when the class has no students.
func ClassAverage(finals []float64) float64 {
	if len(finals) == 0 {
		return 0
	}

	var sum float64
	for _, f := range finals {
		sum += f
	}
	return math.Round(sum/float64(len(finals))*100) / 100
}
