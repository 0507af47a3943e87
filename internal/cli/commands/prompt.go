package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// promptPassword запрашивает пароль без эха в терминале.
func promptPassword() (string, error) {
	fmt.Fprint(Out, "Password: ")
	pw, err := readPassword()
	fmt.Fprintln(Out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// confirm печатает вопрос и ждёт явного "y"/"yes" из In.
func confirm(question string) bool {
	fmt.Fprintf(Out, "%s [y/N]: ", question)
	reader := bufio.NewReader(In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
