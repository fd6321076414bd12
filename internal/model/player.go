package model

// PlayerID uniquely identifies a player within a session
type PlayerID string

// TaskID identifies a task within its owning player's task list
type TaskID string

// Role is the hidden role dealt to a player at round start
type Role string

const (
	RoleCrewmate Role = "crewmate"
	RoleImpostor Role = "impostor"
	RoleAnalyst  Role = "analyst" // Crew-aligned support role, only dealt to rosters of 6+
)

// CrewAligned reports whether the role plays for the crew side
func (r Role) CrewAligned() bool {
	return r == RoleCrewmate || r == RoleAnalyst
}

// TaskKind returns the kind of task dealt to this role
func (r Role) TaskKind() TaskKind {
	switch r {
	case RoleImpostor:
		return TaskKindImpostor
	case RoleAnalyst:
		return TaskKindSupport
	default:
		return TaskKindCrew
	}
}

// PlayerStatus tracks whether a player is still in play
type PlayerStatus string

const (
	StatusAlive      PlayerStatus = "alive"
	StatusEliminated PlayerStatus = "eliminated"
)

// TaskKind is fixed when the task is dealt and never changes afterwards
type TaskKind string

const (
	TaskKindCrew     TaskKind = "crew"
	TaskKindImpostor TaskKind = "impostor"
	TaskKindSupport  TaskKind = "support"
)

// Task is a single objective owned by one player
type Task struct {
	ID        TaskID
	Text      string
	Kind      TaskKind
	Completed bool
}

// Player is a participant in the shared-device round
type Player struct {
	ID       PlayerID
	Name     string // Trimmed, unique within the roster (case-insensitive)
	Role     Role
	Status   PlayerStatus
	Tasks    []Task
	CardSeen bool // Role card has been privately shown
}

// NewPlayer creates a lobby player: crewmate, alive, unseen, no tasks
func NewPlayer(id PlayerID, name string) Player {
	return Player{
		ID:     id,
		Name:   name,
		Role:   RoleCrewmate,
		Status: StatusAlive,
	}
}

// IsAlive returns true if the player has not been eliminated
func (p *Player) IsAlive() bool {
	return p.Status == StatusAlive
}

// GetTask returns the task with the given ID, or nil if not found
func (p *Player) GetTask(id TaskID) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i]
		}
	}
	return nil
}

// CompletedTasks returns how many of the player's tasks are done
func (p *Player) CompletedTasks() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the player
func (p Player) Clone() Player {
	if p.Tasks != nil {
		tasks := make([]Task, len(p.Tasks))
		copy(tasks, p.Tasks)
		p.Tasks = tasks
	}
	return p
}
