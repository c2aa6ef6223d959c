package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Yutux/immo-api/internal/models"
	"github.com/Yutux/immo-api/internal/utils"
)

func newVisit(date time.Time) models.Visit {
	return models.Visit{
		PropertyID:  uuid.New(),
		Date:        date,
		VisitorName: "Marie Dubois",
		Notes:       "Première visite",
	}
}

func TestVisitCreateAndGet(t *testing.T) {
	repo := NewVisitRepository()

	created, err := repo.Create(newVisit(time.Now().Add(24 * time.Hour)))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestVisitDateLowerBound(t *testing.T) {
	repo := NewVisitRepository()

	t.Run("more than one year in the past fails", func(t *testing.T) {
		_, err := repo.Create(newVisit(time.Now().AddDate(-1, 0, -1)))
		var ve *utils.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("just inside the bound succeeds", func(t *testing.T) {
		_, err := repo.Create(newVisit(time.Now().AddDate(-1, 0, 0).Add(time.Hour)))
		require.NoError(t, err)
	})

	t.Run("one second in the future succeeds", func(t *testing.T) {
		_, err := repo.Create(newVisit(time.Now().Add(time.Second)))
		require.NoError(t, err)
	})

	t.Run("far future has no upper bound", func(t *testing.T) {
		_, err := repo.Create(newVisit(time.Now().AddDate(5, 0, 0)))
		require.NoError(t, err)
	})

	t.Run("zero date fails", func(t *testing.T) {
		_, err := repo.Create(newVisit(time.Time{}))
		var ve *utils.ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestVisitListSortedByDateDesc(t *testing.T) {
	repo := NewVisitRepository()

	now := time.Now()
	for _, offset := range []time.Duration{time.Hour, 72 * time.Hour, 24 * time.Hour, -time.Hour} {
		_, err := repo.Create(newVisit(now.Add(offset)))
		require.NoError(t, err)
	}

	list := repo.List()
	require.Len(t, list, 4)
	for i := 1; i < len(list); i++ {
		require.False(t, list[i-1].Date.Before(list[i].Date),
			"expected non-increasing dates at index %d", i)
	}
}

func TestVisitListByPropertyID(t *testing.T) {
	repo := NewVisitRepository()
	propertyID := uuid.New()

	v1 := newVisit(time.Now().Add(time.Hour))
	v1.PropertyID = propertyID
	_, err := repo.Create(v1)
	require.NoError(t, err)

	v2 := newVisit(time.Now().Add(48 * time.Hour))
	v2.PropertyID = propertyID
	_, err = repo.Create(v2)
	require.NoError(t, err)

	_, err = repo.Create(newVisit(time.Now().Add(2 * time.Hour)))
	require.NoError(t, err)

	got := repo.ListByPropertyID(propertyID)
	require.Len(t, got, 2)
	require.True(t, got[0].Date.After(got[1].Date))
	for _, v := range got {
		require.Equal(t, propertyID, v.PropertyID)
	}
}

func TestVisitUpcomingPastPartition(t *testing.T) {
	repo := NewVisitRepository()

	now := time.Now()
	offsets := []time.Duration{-300 * time.Hour, -time.Hour, time.Minute, time.Hour, 200 * time.Hour}
	for _, offset := range offsets {
		_, err := repo.Create(newVisit(now.Add(offset)))
		require.NoError(t, err)
	}

	upcoming := repo.Upcoming()
	past := repo.Past()
	all := repo.List()

	require.Len(t, all, len(offsets))
	require.Equal(t, len(all), len(upcoming)+len(past))

	seen := make(map[uuid.UUID]bool)
	for _, v := range upcoming {
		require.True(t, v.Date.After(now))
		seen[v.ID] = true
	}
	for _, v := range past {
		require.False(t, v.Date.After(now))
		require.False(t, seen[v.ID], "visit %s in both partitions", v.ID)
		seen[v.ID] = true
	}
	require.Len(t, seen, len(all))

	// upcoming soonest first, past most recent first
	for i := 1; i < len(upcoming); i++ {
		require.False(t, upcoming[i].Date.Before(upcoming[i-1].Date))
	}
	for i := 1; i < len(past); i++ {
		require.False(t, past[i-1].Date.Before(past[i].Date))
	}
}

func TestVisitListByDateRangeInclusive(t *testing.T) {
	repo := NewVisitRepository()

	base := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	t1 := base
	t2 := base.Add(time.Hour)
	t3 := base.Add(2 * time.Hour)
	for _, d := range []time.Time{t1, t2, t3} {
		_, err := repo.Create(newVisit(d))
		require.NoError(t, err)
	}

	got := repo.ListByDateRange(t1, t2)
	require.Len(t, got, 2)
	for _, v := range got {
		require.False(t, v.Date.Before(t1))
		require.False(t, v.Date.After(t2))
	}
}

func TestVisitUpdate(t *testing.T) {
	repo := NewVisitRepository()
	created, err := repo.Create(newVisit(time.Now().Add(time.Hour)))
	require.NoError(t, err)

	t.Run("merges fields and keeps id", func(t *testing.T) {
		notes := "Visite en famille"
		updated, err := repo.Update(created.ID, models.VisitPatch{Notes: &notes})
		require.NoError(t, err)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, notes, updated.Notes)
		require.Equal(t, created.VisitorName, updated.VisitorName)
	})

	t.Run("revalidates date when present", func(t *testing.T) {
		tooOld := time.Now().AddDate(-1, 0, -1)
		_, err := repo.Update(created.ID, models.VisitPatch{Date: &tooOld})
		var ve *utils.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("missing visit", func(t *testing.T) {
		_, err := repo.Update(uuid.New(), models.VisitPatch{})
		var nf *utils.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestVisitDelete(t *testing.T) {
	repo := NewVisitRepository()
	created, err := repo.Create(newVisit(time.Now().Add(time.Hour)))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	err = repo.Delete(created.ID)
	var nf *utils.NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Empty(t, repo.List())
}
