package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/ports/output"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "retreat.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func seedEvent(t *testing.T, store *Store, owner string) *entities.Event {
	t.Helper()
	event := &entities.Event{
		OwnerID:               owner,
		Name:                  "Retiro de otoño",
		DateStart:             time.Date(2026, time.October, 9, 0, 0, 0, 0, time.UTC),
		DateEnd:               time.Date(2026, time.October, 11, 0, 0, 0, 0, time.UTC),
		EstimatedParticipants: 12,
		Status:                domain.EventStatusActive,
	}
	if err := store.Repos().Events.Create(context.Background(), event); err != nil {
		t.Fatalf("create event: %v", err)
	}
	return event
}

func seedParticipation(t *testing.T, store *Store, event *entities.Event, name string, gender domain.Gender) *entities.Participation {
	t.Helper()
	ctx := context.Background()
	repos := store.Repos()
	person := entities.NewPerson(event.OwnerID, name, gender, domain.RoleParticipant)
	if err := repos.Persons.Create(ctx, &person); err != nil {
		t.Fatalf("create person: %v", err)
	}
	p := &entities.Participation{
		EventID:  event.ID,
		PersonID: person.ID,
		Role:     domain.RoleParticipant,
		Status:   domain.StatusConfirmed,
	}
	if err := repos.Participations.Create(ctx, p); err != nil {
		t.Fatalf("create participation: %v", err)
	}
	return p
}

func seedRoom(t *testing.T, store *Store, event *entities.Event, number string) *entities.Room {
	t.Helper()
	room := &entities.Room{
		EventID:           event.ID,
		InternalNumber:    number,
		DisplayName:       entities.DefaultRoomName(number),
		Capacity:          2,
		GenderRestriction: domain.RestrictionMixed,
	}
	if err := store.Repos().Rooms.Create(context.Background(), room); err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenTwiceKeepsSchema(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "retreat.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	second, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	_ = second.Close()
}

func TestEventRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	event := seedEvent(t, store, "org-1")
	if event.ID == "" {
		t.Fatal("expected generated event id")
	}

	got, err := store.Repos().Events.FindByID(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("find event: %v", err)
	}
	if got.Name != event.Name {
		t.Fatalf("name = %q, want %q", got.Name, event.Name)
	}
	if !got.DateStart.Equal(event.DateStart) || !got.DateEnd.Equal(event.DateEnd) {
		t.Fatalf("dates = %v..%v, want %v..%v", got.DateStart, got.DateEnd, event.DateStart, event.DateEnd)
	}
	if got.OwnerID != "org-1" {
		t.Fatalf("owner = %q, want org-1", got.OwnerID)
	}
}

func TestFindMissingRowsReturnNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	repos := store.Repos()
	ctx := context.Background()

	if _, err := repos.Events.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("event err = %v, want %v", err, domain.ErrNotFound)
	}
	if _, err := repos.Rooms.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("room err = %v, want %v", err, domain.ErrNotFound)
	}
	if _, err := repos.Participations.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("participation err = %v, want %v", err, domain.ErrNotFound)
	}
	if err := repos.Participations.SetRoom(ctx, "missing", nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("set room err = %v, want %v", err, domain.ErrNotFound)
	}
}

func TestReserveRoomNumbersIsMonotonic(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	event := seedEvent(t, store, "org-1")
	events := store.Repos().Events
	ctx := context.Background()

	first, err := events.ReserveRoomNumbers(ctx, event.ID, 4)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if first != 1 {
		t.Fatalf("first = %d, want 1", first)
	}
	next, err := events.ReserveRoomNumbers(ctx, event.ID, 2)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if next != 5 {
		t.Fatalf("next = %d, want 5", next)
	}
	got, err := events.FindByID(ctx, event.ID)
	if err != nil {
		t.Fatalf("find event: %v", err)
	}
	if got.RoomSeq != 6 {
		t.Fatalf("room_seq = %d, want 6", got.RoomSeq)
	}
}

func TestRoomsListedInNumericOrder(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	event := seedEvent(t, store, "org-1")
	for _, n := range []string{"10", "02", "100", "01"} {
		seedRoom(t, store, event, n)
	}

	rooms, err := store.Repos().Rooms.FindByEventID(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	want := []string{"01", "02", "10", "100"}
	if len(rooms) != len(want) {
		t.Fatalf("rooms = %d, want %d", len(rooms), len(want))
	}
	for i, r := range rooms {
		if r.InternalNumber != want[i] {
			t.Fatalf("rooms[%d] = %q, want %q", i, r.InternalNumber, want[i])
		}
	}
}

func TestDuplicateRoomNumberRejected(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	event := seedEvent(t, store, "org-1")
	seedRoom(t, store, event, "01")

	dup := &entities.Room{EventID: event.ID, InternalNumber: "01", Capacity: 2, GenderRestriction: domain.RestrictionMixed}
	if err := store.Repos().Rooms.Create(context.Background(), dup); err == nil {
		t.Fatal("expected unique violation for duplicate internal number")
	}
}

func TestParticipationCarriesPersonAndRoom(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	event := seedEvent(t, store, "org-1")
	room := seedRoom(t, store, event, "01")
	p := seedParticipation(t, store, event, "Ana García", domain.GenderFemale)

	if err := store.Repos().Participations.SetRoom(ctx, p.ID, &room.ID); err != nil {
		t.Fatalf("set room: %v", err)
	}
	got, err := store.Repos().Participations.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("find participation: %v", err)
	}
	if got.Person.NameDisplay != "Ana G." {
		t.Fatalf("display name = %q, want %q", got.Person.NameDisplay, "Ana G.")
	}
	if got.Person.Gender != domain.GenderFemale {
		t.Fatalf("gender = %q, want %q", got.Person.Gender, domain.GenderFemale)
	}
	if !got.InRoom(room.ID) {
		t.Fatalf("room id = %v, want %s", got.RoomID, room.ID)
	}
	if got.Room == nil || got.Room.DisplayName != "Hab 01" {
		t.Fatalf("room ref = %+v, want Hab 01", got.Room)
	}

	occupants, err := store.Repos().Participations.FindByRoomID(ctx, room.ID)
	if err != nil {
		t.Fatalf("find by room: %v", err)
	}
	if len(occupants) != 1 {
		t.Fatalf("occupants = %d, want 1", len(occupants))
	}
}

func TestParticipationUpdateKeepsRoom(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	event := seedEvent(t, store, "org-1")
	room := seedRoom(t, store, event, "01")
	p := seedParticipation(t, store, event, "Luis Pérez", domain.GenderMale)
	repos := store.Repos()

	if err := repos.Participations.SetRoom(ctx, p.ID, &room.ID); err != nil {
		t.Fatalf("set room: %v", err)
	}
	p.RoomID = nil
	p.DietaryRequirements = []domain.Dietary{domain.DietaryVegetarian, domain.DietaryGlutenFree}
	p.AllergiesText = "frutos secos"
	p.Status = domain.StatusTentative
	if err := repos.Participations.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repos.Participations.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !got.InRoom(room.ID) {
		t.Fatalf("update moved participation out of room: %v", got.RoomID)
	}
	if len(got.DietaryRequirements) != 2 || got.DietaryRequirements[1] != domain.DietaryGlutenFree {
		t.Fatalf("dietary = %v", got.DietaryRequirements)
	}
	if got.Status != domain.StatusTentative || got.AllergiesText != "frutos secos" {
		t.Fatalf("details not persisted: %+v", got)
	}
}

func TestDeleteRoomReturnsOccupantsToPool(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	event := seedEvent(t, store, "org-1")
	room := seedRoom(t, store, event, "01")
	p := seedParticipation(t, store, event, "Marta Ruiz", domain.GenderFemale)
	repos := store.Repos()

	if err := repos.Participations.SetRoom(ctx, p.ID, &room.ID); err != nil {
		t.Fatalf("set room: %v", err)
	}
	if err := repos.Rooms.Delete(ctx, room.ID); err != nil {
		t.Fatalf("delete room: %v", err)
	}
	unassigned, err := repos.Participations.FindUnassigned(ctx, event.ID)
	if err != nil {
		t.Fatalf("find unassigned: %v", err)
	}
	if len(unassigned) != 1 || unassigned[0].ID != p.ID {
		t.Fatalf("unassigned = %+v, want [%s]", unassigned, p.ID)
	}
}

func TestDeleteEventCascades(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	event := seedEvent(t, store, "org-1")
	room := seedRoom(t, store, event, "01")
	p := seedParticipation(t, store, event, "Pablo Díaz", domain.GenderMale)
	repos := store.Repos()

	if err := repos.Events.Delete(ctx, event.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if _, err := repos.Rooms.FindByID(ctx, room.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("room err = %v, want %v", err, domain.ErrNotFound)
	}
	if _, err := repos.Participations.FindByID(ctx, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("participation err = %v, want %v", err, domain.ErrNotFound)
	}
	if err := repos.Events.Delete(ctx, event.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete err = %v, want %v", err, domain.ErrNotFound)
	}
}

func TestEventSummaryCounters(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	event := seedEvent(t, store, "org-1")
	seedEvent(t, store, "org-2")
	room := seedRoom(t, store, event, "01")
	seedRoom(t, store, event, "02")
	p := seedParticipation(t, store, event, "Ana García", domain.GenderFemale)
	seedParticipation(t, store, event, "Luis Pérez", domain.GenderMale)
	if err := store.Repos().Participations.SetRoom(ctx, p.ID, &room.ID); err != nil {
		t.Fatalf("set room: %v", err)
	}

	summaries, err := store.Repos().Events.FindByOwnerID(ctx, "org-1")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("events = %d, want 1", len(summaries))
	}
	s := summaries[0]
	if s.RoomCount != 2 || s.PersonCount != 2 || s.AssignedCount != 1 {
		t.Fatalf("counters = rooms %d persons %d assigned %d, want 2/2/1", s.RoomCount, s.PersonCount, s.AssignedCount)
	}
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	event := seedEvent(t, store, "org-1")
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(ctx context.Context, repos output.Repositories) error {
		if _, err := repos.Events.ReserveRoomNumbers(ctx, event.ID, 3); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	got, err := store.Repos().Events.FindByID(ctx, event.ID)
	if err != nil {
		t.Fatalf("find event: %v", err)
	}
	if got.RoomSeq != 0 {
		t.Fatalf("room_seq = %d, want 0 after rollback", got.RoomSeq)
	}
}
