package dto

// WizardStateDTO é o checkpoint tipado do assistente de associação. É salvo
// no Redis a cada mudança de passo e restaurado quando o usuário volta; o
// cancelamento simplesmente descarta a chave.
type WizardStateDTO struct {
	Step      int                  `json:"step" validate:"gte=0,lte=4"`
	Selection CreateAssociationDTO `json:"selection"`
}
