package exprscan

import (
	"slices"
	"sync"

	"github.com/hashicorp/hcl/v2"
)

// Container is a thread-safe collection of HCL expressions whose analysis
// is computed lazily and cached until more expressions are added.
type Container struct {
	mu          sync.Mutex
	expressions []hcl.Expression
	analyzed    bool

	references      []hcl.Traversal
	calledFunctions []string
}

// NewContainer creates a new, empty expression container.
func NewContainer() *Container {
	return &Container{}
}

// Add adds expressions to the container. Nil expressions are ignored.
func (c *Container) Add(exprs ...hcl.Expression) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, expr := range exprs {
		if expr != nil {
			c.expressions = append(c.expressions, expr)
			c.analyzed = false
		}
	}
}

func (c *Container) analyze() {
	if c.analyzed {
		return
	}
	c.references, c.calledFunctions = scan(c.expressions...)
	c.analyzed = true
}

// References returns all unique variable traversals, sorted by TraversalKey.
func (c *Container) References() []hcl.Traversal {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analyze()
	return c.references
}

// CalledFunctions returns the sorted, unique names of all called functions.
func (c *Container) CalledFunctions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analyze()
	return c.calledFunctions
}

// Calls reports whether any expression calls the named function.
func (c *Container) Calls(name string) bool {
	_, found := slices.BinarySearch(c.CalledFunctions(), name)
	return found
}
