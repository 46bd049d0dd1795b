package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/George0Simion/BizzGenie/internal/usecases/authenticating"
	"github.com/George0Simion/BizzGenie/pkg/log"
	"github.com/sirupsen/logrus"
)

// Lê a senha do dono pela entrada padrão e imprime o valor de OWNER_PASSWORD_HASH
func main() {
	log.Setup("info")

	fmt.Fprint(os.Stderr, "Senha do dono: ")
	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && password == "" {
		logrus.WithError(err).Fatal("Erro ao ler a senha")
	}

	hash, err := authenticating.HashOwnerPassword(strings.TrimRight(password, "\r\n"))
	if err != nil {
		logrus.WithError(err).Fatal("Senha recusada")
	}

	fmt.Println(hash)
}
