package scrape

import (
	"fmt"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// Progress shows one spinner slot per in-flight site. A nil *Progress is
// valid and silent, which keeps tests and non-TTY runs quiet.
type Progress struct {
	mu       sync.Mutex
	spinners []*spinner.Spinner
	inUse    []bool
}

// NewProgress allocates n spinner slots.
func NewProgress(n int) *Progress {
	spinners := make([]*spinner.Spinner, n)
	for i := range spinners {
		spinners[i] = spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	}
	return &Progress{
		spinners: spinners,
		inUse:    make([]bool, n),
	}
}

// Start claims a free slot for the label and returns its id, or -1 when
// every slot is busy.
func (p *Progress) Start(label string) int {
	if p == nil {
		return -1
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, busy := range p.inUse {
		if busy {
			continue
		}
		p.inUse[i] = true
		p.spinners[i].Suffix = fmt.Sprintf(" [%d] %s", i, truncateLabel(label))
		p.spinners[i].Start()
		return i
	}
	return -1
}

// Done releases a slot claimed by Start.
func (p *Progress) Done(id int) {
	if p == nil || id < 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if id < len(p.spinners) {
		p.spinners[id].Stop()
		p.inUse[id] = false
	}
}

// Stop halts every spinner.
func (p *Progress) Stop() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, sp := range p.spinners {
		sp.Stop()
		p.inUse[i] = false
	}
}

func truncateLabel(label string) string {
	const maxLen = 40
	if len(label) <= maxLen {
		return label
	}
	return "..." + label[len(label)-maxLen:]
}
