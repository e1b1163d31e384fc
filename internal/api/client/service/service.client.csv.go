// Package clientsvc - importação e exportação CSV da carteira de clientes.
// O formato de exportação é fixo; a importação aceita cabeçalhos variados,
// datas em várias convenções e moeda com símbolo/vírgula.
package clientsvc

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	authsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/service"
	clientmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/models"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/locale"
)

// ExportHeader é o cabeçalho fixo de 7 colunas do arquivo exportado
var ExportHeader = []string{"Nome", "WhatsApp", "Vencimento", "Valor", "Usuario", "Observacao", "Status"}

// ExportCSV serializa a carteira no formato delimitado por ponto e vírgula
func ExportCSV(clients []clientmodels.Client, f *locale.Formatter) (string, error) {
	if f == nil {
		f = locale.BRL()
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(ExportHeader); err != nil {
		return "", common.NewError(common.ErrCodeValidationFormat, "Falha ao gerar o CSV", common.StatusInternalServerError, err)
	}
	for _, c := range clients {
		due := ""
		if c.DueDate != nil {
			due = f.FormatDate(*c.DueDate)
		}
		value := strings.Replace(fmt.Sprintf("%.2f", c.Value), ".", f.DecimalSep, 1)
		row := []string{c.Name, c.Whatsapp, due, value, c.Username, c.Observation, c.Status}
		if err := w.Write(row); err != nil {
			return "", common.NewError(common.ErrCodeValidationFormat, "Falha ao gerar o CSV", common.StatusInternalServerError, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", common.NewError(common.ErrCodeValidationFormat, "Falha ao gerar o CSV", common.StatusInternalServerError, err)
	}
	return buf.String(), nil
}

// columnKind identifica a qual campo uma coluna do arquivo importado pertence
type columnKind int

const (
	colUnknown columnKind = iota
	colName
	colWhatsapp
	colDueDate
	colValue
	colUsername
	colObservation
	colStatus
)

// headerPrefixes mapeia fragmentos de cabeçalho (sem acento, minúsculos) para
// o campo correspondente. O primeiro fragmento que casar decide a coluna.
var headerPrefixes = []struct {
	fragments []string
	kind      columnKind
}{
	{[]string{"nome", "client", "name"}, colName},
	{[]string{"zap", "what", "cel", "tel", "fone", "phone"}, colWhatsapp},
	{[]string{"venc", "expir", "date", "data"}, colDueDate},
	{[]string{"val", "pric", "preco"}, colValue},
	{[]string{"usu", "user", "login"}, colUsername},
	{[]string{"obs", "nota", "note"}, colObservation},
	{[]string{"status", "situac"}, colStatus},
}

// normalizeHeader baixa o cabeçalho para minúsculas sem acentos
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer(
		"á", "a", "ã", "a", "â", "a", "à", "a",
		"é", "e", "ê", "e",
		"í", "i",
		"ó", "o", "õ", "o", "ô", "o",
		"ú", "u", "ü", "u",
		"ç", "c",
	)
	return replacer.Replace(s)
}

func classifyHeader(cell string) columnKind {
	normalized := normalizeHeader(cell)
	for _, entry := range headerPrefixes {
		for _, fragment := range entry.fragments {
			if strings.Contains(normalized, fragment) {
				return entry.kind
			}
		}
	}
	return colUnknown
}

// ParseFlexibleDate aceita dd/mm/aaaa, aaaa-mm-dd, dd-mm-aaaa, ano com dois
// dígitos e serial de planilha (valores > 30000 contam dias desde 30/12/1899).
// A posição do ano com 4 dígitos decide a ordem dia/mês. Retorna nil quando
// o valor não é uma data reconhecível.
func ParseFlexibleDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	// Serial de planilha
	if serial, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64); err == nil {
		if serial > 30000 {
			epoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.Local)
			d := epoch.AddDate(0, 0, int(serial))
			return &d
		}
		return nil
	}

	sep := ""
	for _, candidate := range []string{"/", "-", "."} {
		if strings.Contains(raw, candidate) {
			sep = candidate
			break
		}
	}
	if sep == "" {
		return nil
	}

	parts := strings.Split(raw, sep)
	if len(parts) != 3 {
		return nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(strings.SplitN(parts[i], " ", 2)[0])
	}

	var year, month, day int
	var err error
	if len(parts[0]) == 4 {
		// aaaa-mm-dd
		year, err = strconv.Atoi(parts[0])
		if err == nil {
			month, err = strconv.Atoi(parts[1])
		}
		if err == nil {
			day, err = strconv.Atoi(parts[2])
		}
	} else {
		// dd/mm/aaaa ou dd/mm/aa
		day, err = strconv.Atoi(parts[0])
		if err == nil {
			month, err = strconv.Atoi(parts[1])
		}
		if err == nil {
			year, err = strconv.Atoi(parts[2])
		}
		if year < 100 {
			year += 2000
		}
	}
	if err != nil || month < 1 || month > 12 || day < 1 || day > 31 || year < 1900 {
		return nil
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// Rejeita datas impossíveis que o time.Date normalizaria (31/02 etc.)
	if int(d.Month()) != month || d.Day() != day {
		return nil
	}
	return &d
}

// parseOptionalDate é a variante estrita usada pelos DTOs: vazio vira nil,
// valor presente mas ilegível é erro de validação.
func parseOptionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d := ParseFlexibleDate(raw)
	if d == nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Data de vencimento inválida: "+raw, common.StatusBadRequest, nil)
	}
	return d, nil
}

// ParseCurrency normaliza um valor monetário: remove o símbolo e o separador
// de milhar e converte vírgula decimal em ponto. Retorna 0 para vazio/ilegível.
func ParseCurrency(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer("R$", "", "r$", "", " ", "", " ", "").Replace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// NormalizePhone reduz o telefone a dígitos e garante o código do país 55
// (formato internacional exigido pela fila de envio). Vazio permanece vazio.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	phone := digits.String()
	if phone == "" {
		return ""
	}
	if len(phone) <= 11 && !strings.HasPrefix(phone, "55") {
		phone = "55" + phone
	}
	return phone
}

// ParseImportCSV lê o arquivo importado e devolve os clientes reconhecidos.
// Delimitador ponto e vírgula ou vírgula, detectado pelo cabeçalho; linhas
// sem nome são ignoradas; datas ilegíveis entram como sem vencimento.
func ParseImportCSV(data []byte) ([]clientmodels.Client, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}) // BOM do Excel

	firstLine := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		firstLine = data[:idx]
	}
	comma := ';'
	if !bytes.ContainsRune(firstLine, ';') && bytes.ContainsRune(firstLine, ',') {
		comma = ','
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Arquivo CSV vazio ou ilegível", common.StatusBadRequest, err)
	}

	columns := make([]columnKind, len(header))
	hasName := false
	for i, cell := range header {
		columns[i] = classifyHeader(cell)
		if columns[i] == colName {
			hasName = true
		}
	}
	if !hasName {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Cabeçalho sem coluna de nome do cliente", common.StatusBadRequest, nil)
	}

	var clients []clientmodels.Client
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "Linha do CSV ilegível", common.StatusBadRequest, err)
		}

		var c clientmodels.Client
		for i, cell := range record {
			if i >= len(columns) {
				break
			}
			cell = strings.TrimSpace(cell)
			switch columns[i] {
			case colName:
				c.Name = cell
			case colWhatsapp:
				c.Whatsapp = NormalizePhone(cell)
			case colDueDate:
				c.DueDate = ParseFlexibleDate(cell)
			case colValue:
				c.Value = ParseCurrency(cell)
			case colUsername:
				c.Username = cell
			case colObservation:
				c.Observation = cell
			case colStatus:
				if normalizeHeader(cell) == clientmodels.StatusDeleted {
					c.Status = clientmodels.StatusDeleted
				}
			}
		}
		if c.Name == "" {
			continue
		}
		if c.Status == "" {
			c.Status = clientmodels.StatusActive
		}
		clients = append(clients, c)
	}
	return clients, nil
}

// Import grava os clientes importados em um único batch ordenado do dono.
// Tudo ou nada: nenhum viewer concorrente observa importação parcial.
func (s *ClientService) Import(ctx context.Context, sess *authmodels.Session, clients []clientmodels.Client) (int, error) {
	if err := authsvc.Can(sess, authsvc.VerbCreate, authsvc.ResourceClient, nil); err != nil {
		return 0, err
	}
	if len(clients) == 0 {
		return 0, common.NewError(common.ErrCodeValidationInput, "Nenhum cliente válido no arquivo", common.StatusBadRequest, nil)
	}

	now := time.Now().UnixMilli()
	ops := make([]mongo.WriteModel, 0, len(clients))
	for i := range clients {
		clients[i].CreatedBy = sess.Email
		clients[i].CreatedAt = now
		clients[i].UpdatedAt = now
		ops = append(ops, mongo.NewInsertOneModel().SetDocument(clients[i]))
	}

	result, err := s.BulkWrite(ctx, ops)
	if err != nil {
		return 0, err
	}
	return int(result.InsertedCount), nil
}
