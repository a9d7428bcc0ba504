package bus

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

var _ gpio.PinIO = (*linePin)(nil)

// linePin is a chip input line driven by the host. Writing a new level
// fires the chip's edge handler, once per change, like a pin-change
// interrupt. It implements gpio.PinIO so periph-style drivers can use it.
type linePin struct {
	mu    sync.Mutex
	name  string
	num   int
	level gpio.Level
	pull  gpio.Pull
	edge  func(level bool)
}

func newLinePin(name string, num int, level gpio.Level, pull gpio.Pull, edge func(bool)) *linePin {
	return &linePin{
		name:  name,
		num:   num,
		level: level,
		pull:  pull,
		edge:  edge,
	}
}

func (p *linePin) String() string   { return p.name }
func (p *linePin) Halt() error      { return nil }
func (p *linePin) Name() string     { return p.name }
func (p *linePin) Number() int      { return p.num }
func (p *linePin) Function() string { return "Out" }

func (p *linePin) In(pull gpio.Pull, edge gpio.Edge) error {
	return fmt.Errorf("bus: pin %s is driven by the host", p.name)
}

func (p *linePin) Read() gpio.Level {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *linePin) WaitForEdge(timeout time.Duration) bool { return false }

func (p *linePin) Pull() gpio.Pull        { return p.pull }
func (p *linePin) DefaultPull() gpio.Pull { return p.pull }

// Out drives the line. The chip's edge handler runs synchronously, before
// Out returns, so line edges never interleave with byte processing.
func (p *linePin) Out(l gpio.Level) error {
	p.mu.Lock()
	if l == p.level {
		p.mu.Unlock()
		return nil
	}
	p.level = l
	p.mu.Unlock()
	p.edge(bool(l))
	return nil
}

func (p *linePin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return fmt.Errorf("bus: pin %s: pwm unsupported", p.name)
}
