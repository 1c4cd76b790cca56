package tui

import (
	"github.com/javiermolinar/statusbox/internal/status"
)

const emptyBoxArt = `┌───────┐
│       │
└───────┘`

const doneArt = `  ✓  `

// scenario is one canned status the demo can show.
type scenario struct {
	name  string
	about string
	build func(m *Model) status.Status
}

// Title implements list.DefaultItem.
func (s scenario) Title() string { return s.name }

// Description implements list.DefaultItem.
func (s scenario) Description() string { return s.about }

// FilterValue implements list.Item.
func (s scenario) FilterValue() string { return s.name }

func scenarios() []scenario {
	return []scenario{
		{
			name:  "Loading",
			about: "indicator with a description",
			build: func(*Model) status.Status {
				return status.Status{Loading: true, Description: "Loading…"}
			},
		},
		{
			name:  "Simple loading",
			about: "indicator only",
			build: func(*Model) status.Status {
				return status.SimpleLoading()
			},
		},
		{
			name:  "Error",
			about: "title, description and a retry action",
			build: func(m *Model) status.Status {
				return status.Status{
					Title:       "Something went wrong",
					Description: "The server did not answer in time. Check your connection and try again.",
					ActionTitle: "Retry",
					Action:      m.retry,
				}
			},
		},
		{
			name:  "Empty",
			about: "image, title and description",
			build: func(*Model) status.Status {
				return status.Status{
					Title:       "No items",
					Description: "Nothing to show yet.",
					Image:       emptyBoxArt,
				}
			},
		},
		{
			name:  "Title only",
			about: "content group hidden",
			build: func(*Model) status.Status {
				return status.Status{Title: "Nothing here"}
			},
		},
		{
			name:  "Blank",
			about: "zero status, nothing visible",
			build: func(*Model) status.Status {
				return status.Status{}
			},
		},
	}
}

func retryLoadingStatus() status.Status {
	return status.Status{Loading: true, Description: "Retrying…"}
}

func retryDoneStatus() status.Status {
	return status.Status{
		Title:       "All caught up",
		Description: "The retry finished and there is nothing new.",
		Image:       doneArt,
	}
}
