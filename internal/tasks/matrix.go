package tasks

import "github.com/google/uuid"

type MatrixTask struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Priority Priority  `json:"priority"`
	Urgency  Urgency   `json:"urgency"`
	Status   Status    `json:"status"`
	Progress int       `json:"progress"`
}

type MatrixSummary struct {
	TotalTasks int            `json:"total_tasks"`
	ByQuadrant map[string]int `json:"by_quadrant"`
}

type MatrixData struct {
	Matrix  map[string][]MatrixTask `json:"matrix"`
	Summary MatrixSummary           `json:"summary"`
}

var matrixKeys = []string{
	"high_high", "high_medium", "high_low",
	"medium_high", "medium_medium", "medium_low",
	"low_high", "low_medium", "low_low",
}

// BuildMatrix buckets tasks into the nine priority/urgency cells.
// Completed tasks are skipped. The four named quadrants count only the
// extreme cells; the medium cells stay in the map without a quadrant
// total, matching the historical shape of this view.
func BuildMatrix(ts []Task) MatrixData {
	matrix := make(map[string][]MatrixTask, len(matrixKeys))
	for _, k := range matrixKeys {
		matrix[k] = []MatrixTask{}
	}

	total := 0
	for _, t := range ts {
		if t.Status == StatusCompleted {
			continue
		}
		key := string(t.Priority) + "_" + string(t.Urgency)
		matrix[key] = append(matrix[key], MatrixTask{
			ID:       t.ID,
			Title:    t.Title,
			Priority: t.Priority,
			Urgency:  t.Urgency,
			Status:   t.Status,
			Progress: t.Progress,
		})
		total++
	}

	return MatrixData{
		Matrix: matrix,
		Summary: MatrixSummary{
			TotalTasks: total,
			ByQuadrant: map[string]int{
				"quadrant_1": len(matrix["high_high"]),
				"quadrant_2": len(matrix["high_low"]),
				"quadrant_3": len(matrix["low_high"]),
				"quadrant_4": len(matrix["low_low"]),
			},
		},
	}
}
