package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/domain/types"
)

func TestNewSession(t *testing.T) {
	sess := model.NewSession("alquileres")

	gt.S(t, sess.ID.String()).NotEqual("")
	gt.S(t, sess.Query).Equal("alquileres")
	gt.A(t, sess.History).Length(0)
	gt.B(t, sess.HasContext()).False()
	gt.B(t, sess.CreatedAt.IsZero()).False()
}

func TestSession_AppendTurn(t *testing.T) {
	sess := model.NewSession("alquileres")
	before := sess.UpdatedAt

	sess.AppendTurn(types.ChatRoleUser, "¿Qué dice la primera sentencia?")
	sess.AppendTurn(types.ChatRoleAssistant, "La primera sentencia trata de un desalojo.")

	gt.A(t, sess.History).Length(2)
	gt.V(t, sess.History[0].Role).Equal(types.ChatRoleUser)
	gt.S(t, sess.History[0].Content).Equal("¿Qué dice la primera sentencia?")
	gt.V(t, sess.History[1].Role).Equal(types.ChatRoleAssistant)
	gt.B(t, sess.UpdatedAt.Before(before)).False()
}

func TestSession_HasContext(t *testing.T) {
	sess := model.NewSession("alquileres")
	gt.B(t, sess.HasContext()).False()

	sess.Corpus = "<documento>...</documento>"
	gt.B(t, sess.HasContext()).True()
}
