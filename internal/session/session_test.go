package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/notify"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

func TestSession(t *testing.T) {
	gm := &entities.User{ID: "gm", IsGM: true}
	player := &entities.User{ID: "p1"}
	token := &entities.Token{ID: "t1", SceneID: "s1"}

	sess := &session.Session{
		User:      gm,
		Users:     []*entities.User{gm, player},
		Selection: []*entities.Token{token},
	}

	assert.True(t, sess.IsGM())
	assert.Equal(t, []*entities.User{player}, sess.Players())
	assert.Equal(t, token, sess.FirstSelected())
	assert.Equal(t, notify.Discard, sess.Notify())
	assert.Equal(t, "gm", sess.UserID())
}

func TestNilSession(t *testing.T) {
	var sess *session.Session

	assert.False(t, sess.IsGM())
	assert.Nil(t, sess.Players())
	assert.Nil(t, sess.FirstSelected())
	assert.NotNil(t, sess.Notify())
	assert.Empty(t, sess.UserID())
}
