package flash

import "context"

// 一度だけ表示するメッセージ。
// セッションには置かず、リクエストスコープのBagで持ち回す
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Bag は1リクエスト分のフラッシュメッセージ置き場。
// クリアはTake()の明示的な呼び出しで行う（読み取りの副作用にしない）
type Bag struct {
	messages []Message
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Add(kind Kind, text string) {
	b.messages = append(b.messages, Message{Kind: kind, Text: text})
}

// Take は溜まったメッセージを返し、Bagを空にする
func (b *Bag) Take() []Message {
	out := b.messages
	b.messages = nil
	return out
}

func (b *Bag) Len() int {
	return len(b.messages)
}

type ctxKey struct{}

// WithBag はBagをcontextに載せる
func WithBag(ctx context.Context, b *Bag) context.Context {
	return context.WithValue(ctx, ctxKey{}, b)
}

// FromContext はcontextからBagを取り出す。無ければ使い捨てを返す
func FromContext(ctx context.Context) *Bag {
	if b, ok := ctx.Value(ctxKey{}).(*Bag); ok {
		return b
	}
	return NewBag()
}
