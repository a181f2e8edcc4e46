package controllers

import "github.com/conectaedu/frontend/portal"

const (
	msgFillAll       = "Preencha todos os campos."
	msgFillLogin     = "Informe usuário e senha."
	msgTooMany       = "Muitas tentativas. Aguarde um minuto e tente novamente."
	msgNoIDForEdit   = "Este post não possui ID válido para edição."
	msgNoIDForDelete = "Este post não possui ID válido para exclusão."
	msgMissingPostID = "Resposta sem ID do post."
	msgUnknownAction = "Ação desconhecida."
)

func errorMessage(err error) string {
	return portal.Message(err)
}
