package search

import "github.com/poiesic/laureate/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type Monitor interface {
	Start(query string)
	AfterRetrieval(hits []*core.Hit)
	AfterAwardFilter(awardName string, hits []*core.Hit)
	AfterDedup(hits []*core.Hit)
	Finish(hits []*core.Hit)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) AfterRetrieval(_ []*core.Hit)          {}
func (n *noopMonitor) AfterAwardFilter(_ string, _ []*core.Hit) {}
func (n *noopMonitor) AfterDedup(_ []*core.Hit)              {}
func (n *noopMonitor) Finish(_ []*core.Hit)                  {}
