package controller

import "sync"

const DefaultName = "MainController"

type Controller struct {
	name string

	lock *sync.RWMutex
	data int
}

func New(name string) *Controller {
	return &Controller{name: name, lock: &sync.RWMutex{}}
}

var (
	instance     *Controller
	instanceOnce sync.Once
)

// Instance returns the process wide controller, it is created on first use and the same controller is returned on
// every subsequent call.
func Instance() *Controller {
	instanceOnce.Do(func() {
		instance = New(DefaultName)
	})

	return instance
}

func (c *Controller) Name() string {
	return c.name
}

func (c *Controller) SetData(d int) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.data = d
}

func (c *Controller) Data() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.data
}
