package ui

import (
	"github.com/user/sheet-manager-tui/pkg/models"
	"github.com/user/sheet-manager-tui/pkg/store"
)

// DemoRecords returns a small set of job requests for a first run
func DemoRecords() []models.Fields {
	return []models.Fields{
		{
			models.ColumnJob:       "Launch social media campaign for product XYZ",
			models.ColumnSubmitted: "2024-11-15",
			models.ColumnStatus:    models.StatusInProcess,
			models.ColumnSubmitter: "Aisha Patel",
			models.ColumnURL:       "www.aishapatel.com",
			models.ColumnAssigned:  "Sophie Choudhury",
			models.ColumnPriority:  models.PriorityMedium,
			models.ColumnDueDate:   "2024-11-20",
			models.ColumnValue:     "6,200,000",
		},
		{
			models.ColumnJob:       "Update press kit for company redesign",
			models.ColumnSubmitted: "2024-10-28",
			models.ColumnStatus:    models.StatusNeedToStart,
			models.ColumnSubmitter: "Irfan Khan",
			models.ColumnURL:       "www.irfankhanportfolio.com",
			models.ColumnAssigned:  "Tejas Pandey",
			models.ColumnPriority:  models.PriorityHigh,
			models.ColumnDueDate:   "2024-10-30",
			models.ColumnValue:     "3,500,000",
		},
		{
			models.ColumnJob:       "Finalize user testing feedback for app update",
			models.ColumnSubmitted: "2024-12-05",
			models.ColumnStatus:    models.StatusInProcess,
			models.ColumnSubmitter: "Mark Johnson",
			models.ColumnURL:       "www.markjohnsondesigns.com",
			models.ColumnAssigned:  "Rachel Lee",
			models.ColumnPriority:  models.PriorityMedium,
			models.ColumnDueDate:   "2024-12-10",
			models.ColumnValue:     "4,750,000",
		},
		{
			models.ColumnJob:       "Design new features for the website",
			models.ColumnSubmitted: "2025-01-10",
			models.ColumnStatus:    models.StatusComplete,
			models.ColumnSubmitter: "Emily Green",
			models.ColumnURL:       "www.emilygreenart.com",
			models.ColumnAssigned:  "Tom Wright",
			models.ColumnPriority:  models.PriorityLow,
			models.ColumnDueDate:   "2025-01-15",
			models.ColumnValue:     "5,900,000",
		},
		{
			models.ColumnJob:       "Prepare financial report for Q4",
			models.ColumnSubmitted: "2025-01-25",
			models.ColumnStatus:    models.StatusBlocked,
			models.ColumnSubmitter: "Jessica Brown",
			models.ColumnURL:       "www.jessicabrowncreative.com",
			models.ColumnAssigned:  "Kevin Smith",
			models.ColumnPriority:  models.PriorityLow,
			models.ColumnDueDate:   "2025-01-30",
			models.ColumnValue:     "2,800,000",
		},
	}
}

// LoadDemoData replaces the store contents with DemoRecords
func LoadDemoData(st *store.Store) {
	st.ReplaceAll(DemoRecords(), models.DefaultColumns)
}
