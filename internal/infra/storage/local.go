package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 商品画像の保存先。アップロードされたファイルを受け取り公開URLを返す
type ImageStorage interface {
	Save(filename string, src io.Reader) (string, error)
}

// ローカルディスク実装。/uploads 配下に置き、そのパスをURLとして返す
type LocalImageStorage struct {
	dir string
}

func NewLocalImageStorage(dir string) (*LocalImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalImageStorage{dir: dir}, nil
}

func (s *LocalImageStorage) Save(filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	//ファイル名は衝突しないように付け直す
	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
