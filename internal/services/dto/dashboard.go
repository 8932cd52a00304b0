package dto

// DashboardStats - сводные счетчики личного кабинета.
// GigsHired - сколько раз фрилансера когда-либо нанимали (hired + completed),
// CurrentlyAssigned - активные наймы прямо сейчас (только hired).
type DashboardStats struct {
	GigsPosted        int64 `json:"gigs_posted"`
	GigsCompleted     int64 `json:"gigs_completed"`
	BidsSubmitted     int64 `json:"bids_submitted"`
	GigsHired         int64 `json:"gigs_hired"`
	CurrentlyAssigned int64 `json:"currently_assigned"`
	JobsCompleted     int64 `json:"jobs_completed"`
}
