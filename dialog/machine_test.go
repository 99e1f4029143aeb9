package dialog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/m3rciful/volunteerbot/tasks"
)

type fakeCreator struct {
	created  []tasks.Task
	failWith error
}

func (f *fakeCreator) Create(_ context.Context, kind tasks.Kind, text string, creatorID int64) (tasks.Task, error) {
	if f.failWith != nil {
		return tasks.Task{}, f.failWith
	}
	t := tasks.Task{
		ID:        uuid.New(),
		Kind:      kind,
		Text:      text,
		Status:    tasks.StatusUnassigned,
		CreatorID: creatorID,
	}
	f.created = append(f.created, t)
	return t, nil
}

func newTestMachine() (*Machine, *fakeCreator, Tracker) {
	creator := &fakeCreator{}
	tracker := NewMemoryTracker()
	return NewMachine(tracker, creator), creator, tracker
}

func TestMachineHappyPath(t *testing.T) {
	m, creator, _ := newTestMachine()
	ctx := context.Background()
	user := User{ID: 42, Username: "helper"}

	reply := m.Start(ctx, user)
	if reply.Screen != ScreenChooseKind || reply.Keyboard != KeyboardKindSelect {
		t.Fatalf("Start reply: %+v", reply)
	}

	reply, err := m.Select(ctx, user, tasks.KindShelter)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if reply.Screen != ScreenEnterText || reply.Kind != tasks.KindShelter || reply.Keyboard != KeyboardCancelOnly {
		t.Fatalf("Select reply: %+v", reply)
	}

	reply, err = m.Text(ctx, user, "family of four needs a roof")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if reply.Screen != ScreenConfirm || reply.Keyboard != KeyboardConfirmCancel {
		t.Fatalf("Text reply: %+v", reply)
	}
	if reply.Draft.Text != "family of four needs a roof" {
		t.Fatalf("Text reply draft: %+v", reply.Draft)
	}

	reply, err = m.Create(ctx, user)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if reply.Screen != ScreenCreated {
		t.Fatalf("Create reply: %+v", reply)
	}

	if len(creator.created) != 1 {
		t.Fatalf("expected exactly one task, got %d", len(creator.created))
	}
	task := creator.created[0]
	if task.Kind != tasks.KindShelter || task.Text != "family of four needs a roof" || task.CreatorID != 42 {
		t.Errorf("unexpected task: %+v", task)
	}
	if m.InProgress(user.ID) {
		t.Error("dialog still in progress after create")
	}
}

func TestMachineCancelFromEveryState(t *testing.T) {
	ctx := context.Background()
	user := User{ID: 7}

	steps := []func(m *Machine){
		func(m *Machine) {},
		func(m *Machine) { m.Start(ctx, user) },
		func(m *Machine) { m.Start(ctx, user); mustSelect(t, m, ctx, user) },
		func(m *Machine) {
			m.Start(ctx, user)
			mustSelect(t, m, ctx, user)
			if _, err := m.Text(ctx, user, "x"); err != nil {
				t.Fatalf("Text: %v", err)
			}
		},
	}
	for i, arrange := range steps {
		m, _, _ := newTestMachine()
		arrange(m)
		reply := m.Cancel(ctx, user)
		if reply.Screen != ScreenCancelled {
			t.Errorf("step %d: Cancel reply %+v", i, reply)
		}
		if m.InProgress(user.ID) {
			t.Errorf("step %d: dialog survived cancel", i)
		}
	}
}

func mustSelect(t *testing.T, m *Machine, ctx context.Context, user User) {
	t.Helper()
	if _, err := m.Select(ctx, user, tasks.KindShelter); err != nil {
		t.Fatalf("Select: %v", err)
	}
}

func TestMachineRejectsDisabledKind(t *testing.T) {
	m, creator, _ := newTestMachine()
	ctx := context.Background()
	user := User{ID: 1}

	for _, kind := range []tasks.Kind{tasks.KindVolunteer, tasks.KindQuestion, tasks.KindOther, tasks.Kind("BOGUS")} {
		if _, err := m.Select(ctx, user, kind); !errors.Is(err, ErrKindDisabled) {
			t.Errorf("Select(%s): expected ErrKindDisabled, got %v", kind, err)
		}
	}
	if m.InProgress(user.ID) {
		t.Error("disabled selection started a dialog")
	}
	if len(creator.created) != 0 {
		t.Error("disabled selection created a task")
	}
}

func TestMachineTextWhileIdle(t *testing.T) {
	m, _, _ := newTestMachine()
	if _, err := m.Text(context.Background(), User{ID: 1}, "hello"); !errors.Is(err, ErrNoActiveDialog) {
		t.Fatalf("expected ErrNoActiveDialog, got %v", err)
	}
}

func TestMachineCreateWithoutDialog(t *testing.T) {
	m, creator, _ := newTestMachine()
	reply, err := m.Create(context.Background(), User{ID: 1})
	if !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("expected ErrDraftIncomplete, got %v", err)
	}
	if reply.Screen != ScreenExpired {
		t.Errorf("expected expired screen, got %+v", reply)
	}
	if len(creator.created) != 0 {
		t.Error("task created from a stale dialog")
	}
}

func TestMachineCreateWithoutText(t *testing.T) {
	m, creator, _ := newTestMachine()
	ctx := context.Background()
	user := User{ID: 1}
	mustSelect(t, m, ctx, user)

	if _, err := m.Create(ctx, user); !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("expected ErrDraftIncomplete, got %v", err)
	}
	if len(creator.created) != 0 {
		t.Error("task created with no text")
	}
}

func TestMachineTextOverwriteBeforeCreate(t *testing.T) {
	m, creator, _ := newTestMachine()
	ctx := context.Background()
	user := User{ID: 9}
	mustSelect(t, m, ctx, user)

	if _, err := m.Text(ctx, user, "first version"); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if _, err := m.Text(ctx, user, "second version"); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if _, err := m.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(creator.created) != 1 {
		t.Fatalf("expected one task, got %d", len(creator.created))
	}
	if creator.created[0].Text != "second version" {
		t.Errorf("task text = %q, want the latest input", creator.created[0].Text)
	}
}

func TestMachineStoreFailureKeepsDraft(t *testing.T) {
	m, creator, _ := newTestMachine()
	ctx := context.Background()
	user := User{ID: 5}
	mustSelect(t, m, ctx, user)
	if _, err := m.Text(ctx, user, "needs a ride"); err != nil {
		t.Fatalf("Text: %v", err)
	}

	creator.failWith = &tasks.StoreError{Op: "create.insert", Err: errors.New("down")}
	if _, err := m.Create(ctx, user); err == nil {
		t.Fatal("expected store error")
	}
	if !m.InProgress(user.ID) {
		t.Fatal("draft lost after store failure")
	}

	// Retry after the store recovers.
	creator.failWith = nil
	reply, err := m.Create(ctx, user)
	if err != nil {
		t.Fatalf("retry Create: %v", err)
	}
	if reply.Screen != ScreenCreated {
		t.Fatalf("retry reply: %+v", reply)
	}
	if len(creator.created) != 1 || creator.created[0].Text != "needs a ride" {
		t.Errorf("retry produced wrong tasks: %+v", creator.created)
	}
	if m.InProgress(user.ID) {
		t.Error("dialog still in progress after successful retry")
	}
}

func TestMachineUsersAreIndependent(t *testing.T) {
	m, creator, _ := newTestMachine()
	ctx := context.Background()
	alice := User{ID: 100}
	bob := User{ID: 200}

	mustSelect(t, m, ctx, alice)
	if _, err := m.Select(ctx, bob, tasks.KindTransport); err != nil {
		t.Fatalf("Select bob: %v", err)
	}
	if _, err := m.Text(ctx, alice, "alice needs shelter"); err != nil {
		t.Fatalf("Text alice: %v", err)
	}

	// Bob cancels; Alice's dialog must survive.
	m.Cancel(ctx, bob)
	if !m.InProgress(alice.ID) {
		t.Fatal("bob's cancel killed alice's dialog")
	}

	if _, err := m.Create(ctx, alice); err != nil {
		t.Fatalf("Create alice: %v", err)
	}
	if len(creator.created) != 1 {
		t.Fatalf("expected one task, got %d", len(creator.created))
	}
	if creator.created[0].CreatorID != alice.ID {
		t.Errorf("creator_id = %d, want %d", creator.created[0].CreatorID, alice.ID)
	}
}

func TestMachineApplyDispatch(t *testing.T) {
	m, _, _ := newTestMachine()
	ctx := context.Background()
	user := User{ID: 3}

	reply, err := m.Apply(ctx, user, Action{Type: ActionSelect, Kind: tasks.KindShelter})
	if err != nil {
		t.Fatalf("Apply select: %v", err)
	}
	if reply.Screen != ScreenEnterText {
		t.Fatalf("Apply select reply: %+v", reply)
	}

	reply, err = m.Apply(ctx, user, Action{Type: ActionCancel})
	if err != nil {
		t.Fatalf("Apply cancel: %v", err)
	}
	if reply.Screen != ScreenCancelled {
		t.Fatalf("Apply cancel reply: %+v", reply)
	}

	if _, err := m.Apply(ctx, user, Action{}); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("Apply zero action: expected ErrUnknownAction, got %v", err)
	}
}
