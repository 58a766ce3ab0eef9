package chip8

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Stack is the bounded stack of subroutine return addresses.
type Stack struct {
	addrs [StackDepth]uint16
	sp    int
}

// Push stores a return address on the stack. The 17th nested call fails with
// ErrStackOverflow.
func (s *Stack) Push(addr uint16) error {
	if s.sp >= StackDepth {
		return ErrStackOverflow
	}
	s.addrs[s.sp] = addr
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed return address. A return
// with an empty stack fails with ErrStackUnderflow.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.addrs[s.sp], nil
}

// Depth returns the current number of stacked return addresses.
func (s *Stack) Depth() int {
	return s.sp
}

// clear drops all stacked return addresses.
func (s *Stack) clear() {
	s.sp = 0
}
