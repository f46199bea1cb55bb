package handlers

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/BruksfildServices01/academia-backoffice/internal/dto"
	"github.com/BruksfildServices01/academia-backoffice/internal/httperr"
	"github.com/BruksfildServices01/academia-backoffice/internal/models"
	"github.com/BruksfildServices01/academia-backoffice/internal/validators"
)

var (
	errCPFInvalido   = httperr.ErrValidation("invalid_cpf", "CPF inválido.")
	errCPFDuplicado  = httperr.ErrConflict("cpf_duplicado", "Já existe cliente com este CPF.")
	errDataNasc      = httperr.ErrValidation("invalid_data_nascimento", "Data de nascimento inválida.")
	errPlanoIDFormat = httperr.ErrValidation("invalid_plano_id", "planoId inválido.")
)

// ======================================================
// FICHA DE SAÚDE
// ======================================================

type FichaSaudeRequest struct {
	DoencaDiagnosticada            bool     `json:"doencaDiagnosticada"`
	DoencaDiagnosticadaQual        *string  `json:"doencaDiagnosticadaQual"`
	MedicamentosContinuos          bool     `json:"medicamentosContinuos"`
	MedicamentosContinuosQual      *string  `json:"medicamentosContinuosQual"`
	LesaoCirurgiaOrtopedia         bool     `json:"lesaoCirurgiaOrtopedia"`
	LesaoCirurgiaOrtopediaQual     *string  `json:"lesaoCirurgiaOrtopediaQual"`
	ProblemasCardiacosDiabetes     bool     `json:"problemasCardiacosDiabetes"`
	ProblemasCardiacosDiabetesQual *string  `json:"problemasCardiacosDiabetesQual"`
	RestricaoMedica                bool     `json:"restricaoMedica"`
	RestricaoMedicaQual            *string  `json:"restricaoMedicaQual"`
	Objetivos                      []string `json:"objetivos"`
	ObjetivoOutro                  *string  `json:"objetivoOutro"`
	NivelAtividade                 string   `json:"nivelAtividade"`
	FrequenciaDesejada             string   `json:"frequenciaDesejada"`
	DataFicha                      *string  `json:"dataFicha"`
}

func (r FichaSaudeRequest) toModel(clienteID uuid.UUID, now time.Time, loc *time.Location) (models.FichaSaude, error) {
	nivel := r.NivelAtividade
	if nivel == "" {
		nivel = models.NivelNunca
	}
	if !models.IsValidNivelAtividade(nivel) {
		return models.FichaSaude{}, httperr.ErrValidation("invalid_nivel_atividade", "Nível de atividade inválido.")
	}

	freq := r.FrequenciaDesejada
	if freq == "" {
		freq = models.FrequenciaTresPorSemana
	}
	if !models.IsValidFrequencia(freq) {
		return models.FichaSaude{}, httperr.ErrValidation("invalid_frequencia", "Frequência desejada inválida.")
	}

	dataFicha := now
	if d, err := parseOptionalDate(r.DataFicha, loc); err != nil {
		return models.FichaSaude{}, httperr.ErrValidation("invalid_data_ficha", "Data da ficha inválida.")
	} else if d != nil {
		dataFicha = *d
	}

	objetivos := pq.StringArray{}
	for _, o := range r.Objetivos {
		if o = strings.TrimSpace(o); o != "" {
			objetivos = append(objetivos, o)
		}
	}

	return models.FichaSaude{
		ClienteID:                      clienteID,
		DoencaDiagnosticada:            r.DoencaDiagnosticada,
		DoencaDiagnosticadaQual:        r.DoencaDiagnosticadaQual,
		MedicamentosContinuos:          r.MedicamentosContinuos,
		MedicamentosContinuosQual:      r.MedicamentosContinuosQual,
		LesaoCirurgiaOrtopedia:         r.LesaoCirurgiaOrtopedia,
		LesaoCirurgiaOrtopediaQual:     r.LesaoCirurgiaOrtopediaQual,
		ProblemasCardiacosDiabetes:     r.ProblemasCardiacosDiabetes,
		ProblemasCardiacosDiabetesQual: r.ProblemasCardiacosDiabetesQual,
		RestricaoMedica:                r.RestricaoMedica,
		RestricaoMedicaQual:            r.RestricaoMedicaQual,
		Objetivos:                      objetivos,
		ObjetivoOutro:                  r.ObjetivoOutro,
		NivelAtividade:                 nivel,
		FrequenciaDesejada:             freq,
		DataFicha:                      dataFicha,
	}, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateClienteRequest struct {
	Tipo           string             `json:"tipo"`
	NomeCompleto   string             `json:"nomeCompleto"`
	DataNascimento string             `json:"dataNascimento"`
	Sexo           string             `json:"sexo"`
	CPF            string             `json:"cpf"`
	Contato        *string            `json:"contato"`
	Endereco       *string            `json:"endereco"`
	PlanoID        *string            `json:"planoId"`
	Ativo          *bool              `json:"ativo"`
	FichaSaude     *FichaSaudeRequest `json:"fichaSaude"`
}

func (r CreateClienteRequest) toModel(loc *time.Location) (models.Cliente, error) {
	if r.Tipo == "" || strings.TrimSpace(r.NomeCompleto) == "" ||
		r.DataNascimento == "" || r.Sexo == "" || r.CPF == "" {
		return models.Cliente{}, httperr.ErrValidation(
			"missing_fields",
			"tipo, nomeCompleto, dataNascimento, sexo e cpf são obrigatórios.",
		)
	}
	if !models.IsValidTipoCliente(r.Tipo) {
		return models.Cliente{}, httperr.ErrValidation("invalid_tipo", "Tipo de cliente inválido.")
	}
	if !models.IsValidSexo(r.Sexo) {
		return models.Cliente{}, httperr.ErrValidation("invalid_sexo", "Sexo inválido.")
	}
	if !validators.IsCPFValid(r.CPF) {
		return models.Cliente{}, errCPFInvalido
	}
	nasc, err := parseDate(r.DataNascimento, loc)
	if err != nil {
		return models.Cliente{}, errDataNasc
	}

	c := models.Cliente{
		Tipo:           r.Tipo,
		NomeCompleto:   strings.TrimSpace(r.NomeCompleto),
		DataNascimento: nasc,
		Sexo:           r.Sexo,
		CPF:            validators.NormalizeCPF(r.CPF),
		Contato:        r.Contato,
		Endereco:       r.Endereco,
		Ativo:          r.Ativo == nil || *r.Ativo,
	}

	if r.PlanoID != nil && *r.PlanoID != "" {
		id, ok := parseUUIDField(*r.PlanoID)
		if !ok {
			return models.Cliente{}, errPlanoIDFormat
		}
		c.PlanoID = &id
	}

	return c, nil
}

// ======================================================
// UPDATE (parcial)
// ======================================================

// UpdateClienteRequest: campo ausente não muda nada; null limpa os campos
// opcionais (contato, endereco, planoId) e é ignorado nos obrigatórios.
type UpdateClienteRequest struct {
	Tipo           dto.Optional[string] `json:"tipo"`
	NomeCompleto   dto.Optional[string] `json:"nomeCompleto"`
	DataNascimento dto.Optional[string] `json:"dataNascimento"`
	Sexo           dto.Optional[string] `json:"sexo"`
	CPF            dto.Optional[string] `json:"cpf"`
	Contato        dto.Optional[string] `json:"contato"`
	Endereco       dto.Optional[string] `json:"endereco"`
	PlanoID        dto.Optional[string] `json:"planoId"`
	Ativo          dto.Optional[bool]   `json:"ativo"`
	FichaSaude     *FichaSaudeRequest   `json:"fichaSaude"`
}

// applyClientePatch aplica o patch em c e devolve as colunas alteradas.
func applyClientePatch(c *models.Cliente, req UpdateClienteRequest, loc *time.Location) ([]string, error) {
	var cols []string

	if v := req.Tipo.Ptr(); v != nil {
		if !models.IsValidTipoCliente(*v) {
			return nil, httperr.ErrValidation("invalid_tipo", "Tipo de cliente inválido.")
		}
		c.Tipo = *v
		cols = append(cols, "tipo")
	}
	if v := req.NomeCompleto.Ptr(); v != nil {
		if strings.TrimSpace(*v) == "" {
			return nil, httperr.ErrValidation("invalid_nome", "Nome não pode ser vazio.")
		}
		c.NomeCompleto = strings.TrimSpace(*v)
		cols = append(cols, "nome_completo")
	}
	if v := req.DataNascimento.Ptr(); v != nil {
		nasc, err := parseDate(*v, loc)
		if err != nil {
			return nil, errDataNasc
		}
		c.DataNascimento = nasc
		cols = append(cols, "data_nascimento")
	}
	if v := req.Sexo.Ptr(); v != nil {
		if !models.IsValidSexo(*v) {
			return nil, httperr.ErrValidation("invalid_sexo", "Sexo inválido.")
		}
		c.Sexo = *v
		cols = append(cols, "sexo")
	}
	if v := req.CPF.Ptr(); v != nil {
		if !validators.IsCPFValid(*v) {
			return nil, errCPFInvalido
		}
		c.CPF = validators.NormalizeCPF(*v)
		cols = append(cols, "cpf")
	}
	if req.Contato.Set {
		c.Contato = req.Contato.Ptr()
		cols = append(cols, "contato")
	}
	if req.Endereco.Set {
		c.Endereco = req.Endereco.Ptr()
		cols = append(cols, "endereco")
	}
	if req.PlanoID.Set {
		c.PlanoID = nil
		if v := req.PlanoID.Ptr(); v != nil && *v != "" {
			id, ok := parseUUIDField(*v)
			if !ok {
				return nil, errPlanoIDFormat
			}
			c.PlanoID = &id
		}
		c.Plano = nil
		cols = append(cols, "plano_id")
	}
	if v := req.Ativo.Ptr(); v != nil {
		c.Ativo = *v
		cols = append(cols, "ativo")
	}

	return cols, nil
}
