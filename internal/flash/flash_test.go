package flash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBag_TakeClears(t *testing.T) {
	b := NewBag()
	b.Add(KindSuccess, "order placed")
	b.Add(KindError, "oops")

	assert.Equal(t, 2, b.Len())

	msgs := b.Take()
	assert.Equal(t, 2, len(msgs))
	assert.Equal(t, KindSuccess, msgs[0].Kind)
	assert.Equal(t, "order placed", msgs[0].Text)

	//Takeの後は空
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, len(b.Take()))
}

// Addを繰り返してもTakeするまで保持される（読み取りで消えない）
func TestBag_LenDoesNotClear(t *testing.T) {
	b := NewBag()
	b.Add(KindSuccess, "one")

	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 1, b.Len())
}

func TestFromContext_RoundTrip(t *testing.T) {
	b := NewBag()
	ctx := WithBag(context.Background(), b)

	got := FromContext(ctx)
	got.Add(KindSuccess, "hello")

	//同じBagが返る
	assert.Equal(t, 1, b.Len())
}

func TestFromContext_MissingBag(t *testing.T) {
	//Bagが無いcontextでも落ちない
	got := FromContext(context.Background())
	got.Add(KindError, "ignored")
	assert.Equal(t, 1, got.Len())
}
