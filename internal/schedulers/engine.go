package schedulers

import (
	"sort"

	"schedsim/internal/core"
)

// lessFn orders two runnable processes; the smaller one gets the CPU.
// Comparators are always applied with a stable sort, so any complete key
// tie falls back to input order.
type lessFn func(a, b *core.Process) bool

// admit moves every process with Arrival <= now into the ready set,
// preserving input order, and returns the shrunk not-yet-arrived list.
func admit(notArrived []*core.Process, now int, ready *[]*core.Process) []*core.Process {
	rest := notArrived[:0]
	for _, p := range notArrived {
		if p.Arrival <= now {
			*ready = append(*ready, p)
		} else {
			rest = append(rest, p)
		}
	}
	return rest
}

// admitInArrivalOrder is admit for the FIFO-queue policies: the admitted
// batch joins the queue tail sorted by arrival time, equal arrivals in
// input order.
func admitInArrivalOrder(notArrived []*core.Process, now int, queue *[]*core.Process) []*core.Process {
	var batch []*core.Process
	rest := notArrived[:0]
	for _, p := range notArrived {
		if p.Arrival <= now {
			batch = append(batch, p)
		} else {
			rest = append(rest, p)
		}
	}
	sort.SliceStable(batch, func(i, j int) bool { return batch[i].Arrival < batch[j].Arrival })
	*queue = append(*queue, batch...)
	return rest
}

// earliestArrival returns the soonest arrival among the pending processes.
// Only called while the ready set is empty and procs is non-empty; jumping
// the clock there is the single way time advances without work.
func earliestArrival(procs []*core.Process) int {
	next := procs[0].Arrival
	for _, p := range procs[1:] {
		if p.Arrival < next {
			next = p.Arrival
		}
	}
	return next
}

func idleSlice(start, end int) core.Slice {
	return core.Slice{Actor: core.IdleActor, Start: start, End: end}
}

// runNonpreemptive drives the shared admit/select/run-to-completion loop.
// Selection happens only at completion boundaries, so the chosen process
// always runs its full burst as one slice.
func runNonpreemptive(procs []*core.Process, less lessFn) core.Timeline {
	timeline := core.Timeline{}
	var ready []*core.Process
	notArrived := procs
	now := 0

	for len(notArrived) > 0 || len(ready) > 0 {
		notArrived = admit(notArrived, now, &ready)
		if len(ready) == 0 {
			next := earliestArrival(notArrived)
			timeline = append(timeline, idleSlice(now, next))
			now = next
			continue
		}
		sort.SliceStable(ready, func(i, j int) bool { return less(ready[i], ready[j]) })
		p := ready[0]
		ready = ready[1:]
		timeline = append(timeline, core.Slice{Actor: p.Pid, Start: now, End: now + p.Burst})
		now += p.Burst
		p.Remaining = 0
	}
	return timeline
}

// runPreemptive drives the unit-tick loop. Each tick the candidate with
// the minimal key among ready ∪ {incumbent} runs; on a switch the
// incumbent's open slice is closed and the incumbent returns to the ready
// set. Consecutive ticks of the same process coalesce into one slice.
// The incumbent is sorted after the ready set, so on a complete key tie a
// waiting process wins over it.
func runPreemptive(procs []*core.Process, less lessFn) core.Timeline {
	timeline := core.Timeline{}
	var ready []*core.Process
	notArrived := procs
	var current *core.Process
	sliceStart := 0
	now := 0

	for len(notArrived) > 0 || len(ready) > 0 || current != nil {
		notArrived = admit(notArrived, now, &ready)
		if current == nil && len(ready) == 0 {
			next := earliestArrival(notArrived)
			timeline = append(timeline, idleSlice(now, next))
			now = next
			continue
		}

		candidates := make([]*core.Process, 0, len(ready)+1)
		candidates = append(candidates, ready...)
		if current != nil {
			candidates = append(candidates, current)
		}
		sort.SliceStable(candidates, func(i, j int) bool { return less(candidates[i], candidates[j]) })

		if chosen := candidates[0]; chosen != current {
			if current != nil {
				timeline = append(timeline, core.Slice{Actor: current.Pid, Start: sliceStart, End: now})
				ready = append(ready, current)
			}
			ready = removeProcess(ready, chosen)
			current = chosen
			sliceStart = now
		}

		current.Remaining--
		now++
		if current.Finished() {
			timeline = append(timeline, core.Slice{Actor: current.Pid, Start: sliceStart, End: now})
			current = nil
		}
	}
	return timeline
}

func removeProcess(procs []*core.Process, target *core.Process) []*core.Process {
	for i, p := range procs {
		if p == target {
			return append(procs[:i], procs[i+1:]...)
		}
	}
	return procs
}
