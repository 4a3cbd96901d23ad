// Package models holds the in-memory project and task entities and the rules
// that derive a project's status from its tasks.
package models

import "slices"

// Project is the top-level unit of work. Its fields are only reachable
// through methods so that every task mutation re-derives the status.
//
// A Project is not safe for concurrent use.
type Project struct {
	name        string
	description string
	status      Status
	tasks       []Task
}

// NewProject returns a project with no tasks and NotStarted status
func NewProject(name, description string) *Project {
	return &Project{
		name:        name,
		description: description,
		status:      StatusNotStarted,
	}
}

func (p *Project) Name() string        { return p.name }
func (p *Project) Description() string { return p.description }
func (p *Project) Status() Status      { return p.status }

// Tasks returns a copy of the task list in insertion order
func (p *Project) Tasks() []Task {
	return slices.Clone(p.tasks)
}

// Task returns a copy of the named task
func (p *Project) Task(name string) (Task, bool) {
	i := p.indexOf(name)
	if i < 0 {
		return Task{}, false
	}
	return p.tasks[i], true
}

// AddTask appends task, failing with ErrDuplicateTask if the name is taken.
// The project is left untouched on failure.
func (p *Project) AddTask(task Task) error {
	if p.indexOf(task.Name) >= 0 {
		return ErrDuplicateTask
	}
	task.Progress = ClampProgress(task.Progress)
	task.Status = statusForNewTask(task)
	p.tasks = append(p.tasks, task)
	p.deriveStatus()
	return nil
}

// UpdateTaskProgress clamps progress to [0, 100] and stores it on the named task
func (p *Project) UpdateTaskProgress(name string, progress float64) error {
	i := p.indexOf(name)
	if i < 0 {
		return ErrTaskNotFound
	}

	t := &p.tasks[i]
	t.Progress = ClampProgress(progress)
	if t.IsComplete() {
		t.Status = StatusCompleted
	} else {
		t.Status = StatusInProgress
	}

	p.deriveStatus()
	return nil
}

// RemoveTask deletes the named task. A missing task is not an error.
func (p *Project) RemoveTask(name string) {
	i := p.indexOf(name)
	if i < 0 {
		return
	}
	p.tasks = slices.Delete(p.tasks, i, i+1)
	p.deriveStatus()
}

// SetStatus overrides the derived status until the next task mutation
func (p *Project) SetStatus(status Status) {
	p.status = status
}

// OverallProgress is the mean task progress, 0 for a project without tasks
func (p *Project) OverallProgress() float64 {
	if len(p.tasks) == 0 {
		return 0
	}
	var sum float64
	for _, t := range p.tasks {
		sum += t.Progress
	}
	return sum / float64(len(p.tasks))
}

func (p *Project) indexOf(name string) int {
	return slices.IndexFunc(p.tasks, func(t Task) bool {
		return SameName(t.Name, name)
	})
}

func (p *Project) deriveStatus() {
	switch {
	case len(p.tasks) == 0:
		p.status = StatusNotStarted
	case !slices.ContainsFunc(p.tasks, func(t Task) bool { return !t.IsComplete() }):
		p.status = StatusCompleted
	case p.OverallProgress() > 0:
		p.status = StatusInProgress
	default:
		p.status = StatusNotStarted
	}
}

// statusForNewTask keeps a caller-supplied status unless it contradicts the
// progress: a task is Completed exactly when it reaches 100.
func statusForNewTask(t Task) Status {
	switch {
	case t.IsComplete():
		return StatusCompleted
	case t.Status == StatusCompleted, !t.Status.Valid():
		if t.Progress > MinProgress {
			return StatusInProgress
		}
		return StatusNotStarted
	default:
		return t.Status
	}
}
