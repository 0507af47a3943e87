package commands

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты сессии (токен/профиль) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// captureOut подменяет Out на буфер и возвращает его; исходный Out
// восстанавливается при завершении теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

// stubIn подменяет интерактивный ввод на заданные строки.
func stubIn(t *testing.T, input string) {
	t.Helper()
	old := In
	In = strings.NewReader(input)
	t.Cleanup(func() { In = old })
}

// stubPassword подменяет чтение пароля с терминала.
func stubPassword(t *testing.T, password string) {
	t.Helper()
	old := readPassword
	readPassword = func() ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { readPassword = old })
}
