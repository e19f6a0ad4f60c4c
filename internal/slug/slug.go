package slug

import "strings"

// Make は商品名などからURL用のslugを作る。
// 英数字以外はハイフンに落とし、連続ハイフンは1つにまとめる
func Make(name string) string {
	var b strings.Builder
	prevHyphen := true // 先頭のハイフンを抑止

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
