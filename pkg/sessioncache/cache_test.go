package sessioncache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoth-ai/thoth/pkg/pipeline"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "sess-1", Key("sess-1", "W1"))
	assert.Equal(t, "W1", Key("", "W1"))
}

func TestInvalidate(t *testing.T) {
	c := &Cache{
		sessions:   make(map[string]*session),
		lastStates: make(map[string]*pipeline.State),
	}
	res := &pipeline.Resources{Workspace: pipeline.WorkspaceInfo{ID: "W1"}}
	c.sessions["sess-1"] = &session{resources: res}
	c.sessions["sess-2"] = &session{resources: res}
	c.sessions["other"] = &session{resources: &pipeline.Resources{Workspace: pipeline.WorkspaceInfo{ID: "W2"}}}
	c.lastStates["W1"] = &pipeline.State{}

	c.Invalidate("sess-1")
	assert.NotContains(t, c.sessions, "sess-1")
	assert.Contains(t, c.sessions, "sess-2")

	c.InvalidateWorkspace("W1")
	assert.NotContains(t, c.sessions, "sess-2")
	assert.Contains(t, c.sessions, "other")
	assert.Nil(t, c.LastState("W1"))
}

func TestStoreAndLastState(t *testing.T) {
	c := &Cache{
		sessions:   make(map[string]*session),
		lastStates: make(map[string]*pipeline.State),
	}

	assert.Nil(t, c.LastState("W1"))

	state := &pipeline.State{Question: "How many schools?"}
	c.StoreState("W1", state)
	assert.Same(t, state, c.LastState("W1"))
	assert.Nil(t, c.LastState("W2"))
}
