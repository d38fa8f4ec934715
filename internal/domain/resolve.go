package domain

// DependencyState is the per-task state of finish-to-start resolution.
type DependencyState string

// Dependency states.
const (
	DependencyUnresolved DependencyState = "unresolved" // No dependency, or it names no task
	DependencyPending    DependencyState = "pending"    // Start differs from the predecessor's end
	DependencySatisfied  DependencyState = "satisfied"  // Start equals the predecessor's end
)

// ResolveReport describes one resolution run.
type ResolveReport struct {
	Pending []string // IDs still pending when the run stopped
	Passes  int      // Passes executed
	Stable  bool     // True if the last pass changed nothing
}

// Truncated returns true if the pass bound was hit before a stable pass.
// With a non-empty task list this means a cycle or an over-long chain.
func (r ResolveReport) Truncated() bool {
	return !r.Stable && len(r.Pending) > 0
}

// taskIndex maps IDs to tasks. The first occurrence of a duplicated ID wins.
type taskIndex map[string]*Task

func newTaskIndex(tasks []*Task) taskIndex {
	idx := make(taskIndex, len(tasks))
	for _, t := range tasks {
		if _, ok := idx[t.ID]; !ok {
			idx[t.ID] = t
		}
	}
	return idx
}

// predecessor returns the task t depends on, or nil when the reference is
// empty or names no task in the collection.
func (idx taskIndex) predecessor(t *Task) *Task {
	if !t.HasDependency() {
		return nil
	}
	return idx[t.Dependency]
}

func (idx taskIndex) state(t *Task) DependencyState {
	pred := idx.predecessor(t)
	if pred == nil {
		return DependencyUnresolved
	}
	if t.StartDate.Equal(pred.EndDate) {
		return DependencySatisfied
	}
	return DependencyPending
}

// ResolveDependencies pins every task with a resolvable dependency to start
// on its predecessor's end date. Tasks are mutated in place and the same
// slice is returned.
func ResolveDependencies(tasks []*Task) []*Task {
	Resolve(tasks)
	return tasks
}

// Resolve runs fixed-point relaxation over tasks in list order.
//
// Each pass visits tasks front to back; a task whose start differs from its
// predecessor's current end is moved and its end re-derived. Later tasks in a
// pass see moves made earlier in the same pass. Passes repeat until one
// changes nothing or len(tasks) passes have run. Dangling references are left
// untouched. Cycles are not detected: they exhaust the pass bound and the
// tasks involved are reported as pending.
func Resolve(tasks []*Task) ResolveReport {
	idx := newTaskIndex(tasks)

	var report ResolveReport
	for report.Passes < len(tasks) {
		report.Passes++
		changed := false
		for _, t := range tasks {
			pred := idx.predecessor(t)
			if pred == nil {
				continue
			}
			if t.StartDate.Equal(pred.EndDate) {
				continue
			}
			t.SetStart(pred.EndDate)
			changed = true
		}
		if !changed {
			report.Stable = true
			break
		}
	}
	if len(tasks) == 0 {
		report.Stable = true
	}

	for _, t := range tasks {
		if idx.state(t) == DependencyPending {
			report.Pending = append(report.Pending, t.ID)
		}
	}
	return report
}

// DependencyStates returns the resolution state of each task, aligned with
// the input order.
func DependencyStates(tasks []*Task) []DependencyState {
	idx := newTaskIndex(tasks)
	states := make([]DependencyState, 0, len(tasks))
	for _, t := range tasks {
		states = append(states, idx.state(t))
	}
	return states
}

// DependencyLink is a resolvable finish-to-start edge between two tasks,
// addressed by their positions in the task list.
type DependencyLink struct {
	From int // Predecessor index
	To   int // Dependent index
}

// DependencyLinks returns the resolvable links in dependent order.
func DependencyLinks(tasks []*Task) []DependencyLink {
	pos := make(map[string]int, len(tasks))
	for i, t := range tasks {
		if _, ok := pos[t.ID]; !ok {
			pos[t.ID] = i
		}
	}
	var links []DependencyLink
	for i, t := range tasks {
		if !t.HasDependency() {
			continue
		}
		if from, ok := pos[t.Dependency]; ok {
			links = append(links, DependencyLink{From: from, To: i})
		}
	}
	return links
}
