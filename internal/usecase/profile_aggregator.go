package usecase

import (
	"sort"

	"github.com/azkaafiq/consultant-api/internal/domain"
	"github.com/azkaafiq/consultant-api/pkg/apperror"
)

// keyedList keeps values in first-seen order; putting an existing key
// overwrites it in place.
type keyedList[T any] struct {
	index map[int64]int
	items []T
}

func newKeyedList[T any]() *keyedList[T] {
	return &keyedList[T]{index: map[int64]int{}, items: []T{}}
}

func (l *keyedList[T]) put(key int64, v T) {
	if i, ok := l.index[key]; ok {
		l.items[i] = v
		return
	}
	l.index[key] = len(l.items)
	l.items = append(l.items, v)
}

// AggregateProfile folds the flat rows of one profile into a document.
// Scalar fields come from the first row. Each child collection holds one
// entry per id, carrying the values of that id's last row. Work experience
// is ordered by descending id.
func AggregateProfile(rows []domain.ProfileRow) (*domain.ProfileDocument, error) {
	if len(rows) == 0 {
		return nil, apperror.NotFound("User not found")
	}

	works := newKeyedList[domain.WorkExperience]()
	for _, row := range rows {
		if row.WorkExperienceID == nil {
			continue
		}
		works.put(*row.WorkExperienceID, domain.WorkExperience{
			ID:              *row.WorkExperienceID,
			Position:        row.WorkPosition,
			Company:         row.WorkCompany,
			CurrentEmployer: row.WorkCurrentEmployer,
			Description:     row.WorkDescription,
			StartDate:       row.WorkStartDate,
			EndDate:         row.WorkEndDate,
			UploadDate:      row.WorkUploadDate,
		})
	}

	educations := newKeyedList[domain.Education]()
	for _, row := range rows {
		if row.EducationID == nil {
			continue
		}
		educations.put(*row.EducationID, domain.Education{
			ID:         *row.EducationID,
			University: row.University,
			Course:     row.Course,
			Domain:     row.Domain,
			StartDate:  row.EducationStartDate,
			EndDate:    row.EducationEndDate,
		})
	}

	documents := newKeyedList[domain.ApplicationDocument]()
	for _, row := range rows {
		if row.DocumentID == nil {
			continue
		}
		documents.put(*row.DocumentID, domain.ApplicationDocument{
			ID:           *row.DocumentID,
			DocumentType: row.DocumentType,
			FileName:     row.FileName,
			UploadDate:   row.DocumentUploadDate,
		})
	}

	doc := &domain.ProfileDocument{
		Profile:        rows[0].Profile,
		WorkExperience: works.items,
		Education:      educations.items,
		Applications:   documents.items,
	}
	sort.SliceStable(doc.WorkExperience, func(i, j int) bool {
		return doc.WorkExperience[i].ID > doc.WorkExperience[j].ID
	})
	return doc, nil
}
