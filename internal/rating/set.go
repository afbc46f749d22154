package rating

// Set holds at most one Rating per task. Re-rating a task replaces the
// values but keeps the task's original position, so iteration order is the
// order in which tasks were first answered.
//
// Set is not safe for concurrent use; the session store guards it.
type Set struct {
	order []string
	byID  map[string]Rating
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{byID: make(map[string]Rating)}
}

// Put adds or replaces the rating for its task.
func (s *Set) Put(r Rating) {
	if s.byID == nil {
		s.byID = make(map[string]Rating)
	}
	if _, exists := s.byID[r.Task.ID]; !exists {
		s.order = append(s.order, r.Task.ID)
	}
	s.byID[r.Task.ID] = r
}

// Get returns the rating for a task.
func (s *Set) Get(taskID string) (Rating, bool) {
	r, ok := s.byID[taskID]
	return r, ok
}

// Delete removes the rating for a task. It reports whether one existed.
func (s *Set) Delete(taskID string) bool {
	if _, ok := s.byID[taskID]; !ok {
		return false
	}
	delete(s.byID, taskID)
	for i, id := range s.order {
		if id == taskID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of ratings, not-applicable ones included.
func (s *Set) Len() int {
	return len(s.order)
}

// ApplicableLen returns the number of ratings that take part in scoring.
func (s *Set) ApplicableLen() int {
	n := 0
	for _, id := range s.order {
		if s.byID[id].Applicable() {
			n++
		}
	}
	return n
}

// Ratings returns a copy of the ratings in insertion order.
func (s *Set) Ratings() []Rating {
	out := make([]Rating, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Inputs returns the wire form of every rating in insertion order.
func (s *Set) Inputs() []Input {
	out := make([]Input, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Input())
	}
	return out
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{
		order: make([]string, len(s.order)),
		byID:  make(map[string]Rating, len(s.byID)),
	}
	copy(c.order, s.order)
	for k, v := range s.byID {
		c.byID[k] = v
	}
	return c
}

// Clear drops every rating.
func (s *Set) Clear() {
	s.order = nil
	s.byID = make(map[string]Rating)
}
