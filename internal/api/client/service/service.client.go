// Package clientsvc - service de clientes (clients).
// Toda operação recebe a Session do dono e escopa as consultas por createdBy;
// não existe acesso a cliente de outro dono, independente do papel.
package clientsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	authsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/service"
	basemodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/models"
	basesvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/service"
	clientdto "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/dto"
	clientmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/models"
	financemodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/finance/models"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/lifecycle"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
)

// ClientService trata o CRUD de clientes e a renovação com registro de receita
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[clientmodels.Client]
	transactions *basesvc.BaseServiceMongoImpl[financemodels.Transaction]
}

// NewClientService cria o ClientService a partir das collections registradas
func NewClientService() (*ClientService, error) {
	clientColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Clients)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.MongoDB_ColNames.Clients, common.ErrNotFound)
	}
	txnColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.MongoDB_ColNames.Transactions, common.ErrNotFound)
	}
	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[clientmodels.Client](clientColl),
		transactions:         basesvc.NewBaseServiceMongo[financemodels.Transaction](txnColl),
	}, nil
}

// ownerFilter monta o filtro base escopado ao dono da sessão
func ownerFilter(sess *authmodels.Session, extra bson.M) bson.M {
	filter := bson.M{"createdBy": sess.Email}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// Create cadastra um cliente. Valor maior que zero gera a transação de adesão.
func (s *ClientService) Create(ctx context.Context, sess *authmodels.Session, input *clientdto.ClientCreateInput) (*clientmodels.Client, error) {
	if err := authsvc.Can(sess, authsvc.VerbCreate, authsvc.ResourceClient, nil); err != nil {
		return nil, err
	}

	dueDate, err := parseOptionalDate(input.DueDate)
	if err != nil {
		return nil, err
	}

	doc := clientmodels.Client{
		Name:        input.Name,
		Whatsapp:    NormalizePhone(input.Whatsapp),
		DueDate:     dueDate,
		Value:       input.Value,
		Username:    input.Username,
		Observation: input.Observation,
		Status:      clientmodels.StatusActive,
		CreatedBy:   sess.Email,
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	if created.Value > 0 {
		if _, err := s.recordRevenue(ctx, sess, &created, created.Value, financemodels.TypeAdesao); err != nil {
			// Cadastro sem receita registrada não pode ficar no ar
			_ = s.DeleteById(ctx, created.ID)
			return nil, err
		}
	}
	return &created, nil
}

// Update edita campos do cliente; apenas os campos presentes no input mudam
func (s *ClientService) Update(ctx context.Context, sess *authmodels.Session, id primitive.ObjectID, input *clientdto.ClientUpdateInput) (*clientmodels.Client, error) {
	if err := authsvc.Can(sess, authsvc.VerbEdit, authsvc.ResourceClient, nil); err != nil {
		return nil, err
	}

	set := bson.M{}
	unset := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Whatsapp != nil {
		set["whatsapp"] = NormalizePhone(*input.Whatsapp)
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			unset["dueDate"] = ""
		} else {
			due, err := parseOptionalDate(*input.DueDate)
			if err != nil {
				return nil, err
			}
			set["dueDate"] = *due
		}
	}
	if input.Value != nil {
		set["value"] = *input.Value
	}
	if input.Username != nil {
		set["username"] = *input.Username
	}
	if input.Observation != nil {
		set["observation"] = *input.Observation
	}
	if len(set) == 0 && len(unset) == 0 {
		return nil, common.ErrInvalidInput
	}

	update := basesvc.UpdateData{Set: set, Unset: unset}
	updated, err := s.UpdateOne(ctx, ownerFilter(sess, bson.M{"_id": id}), update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete remove definitivamente um cliente do dono (exclusão confirmada na UI)
func (s *ClientService) Delete(ctx context.Context, sess *authmodels.Session, id primitive.ObjectID) error {
	if err := authsvc.Can(sess, authsvc.VerbDelete, authsvc.ResourceClient, nil); err != nil {
		return err
	}
	return s.DeleteOne(ctx, ownerFilter(sess, bson.M{"_id": id}))
}

// BulkDelete remove N clientes em um único batch ordenado: ou todos saem ou
// nenhum sai - observadores concorrentes nunca veem exclusão parcial.
func (s *ClientService) BulkDelete(ctx context.Context, sess *authmodels.Session, ids []primitive.ObjectID) error {
	if err := authsvc.Can(sess, authsvc.VerbDelete, authsvc.ResourceClient, nil); err != nil {
		return err
	}
	if len(ids) == 0 {
		return common.ErrInvalidInput
	}

	ops := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		ops = append(ops, mongo.NewDeleteOneModel().SetFilter(ownerFilter(sess, bson.M{"_id": id})))
	}
	_, err := s.BulkWrite(ctx, ops)
	return err
}

// Renew avança o vencimento do cliente e, quando há valor, registra a
// transação de renovação. As duas escritas são confirmadas antes do retorno;
// se o registro de receita falhar, o vencimento anterior é restaurado.
func (s *ClientService) Renew(ctx context.Context, sess *authmodels.Session, id primitive.ObjectID, extensionDays int) (*clientmodels.Client, *financemodels.Transaction, error) {
	if err := authsvc.Can(sess, authsvc.VerbRenew, authsvc.ResourceClient, nil); err != nil {
		return nil, nil, err
	}
	if extensionDays <= 0 {
		extensionDays = lifecycle.DefaultExtensionDays
	}

	current, err := s.FindOne(ctx, ownerFilter(sess, bson.M{"_id": id}), nil)
	if err != nil {
		return nil, nil, err
	}

	newDue := lifecycle.RenewDate(current.DueDate, extensionDays, time.Now())
	updated, err := s.UpdateById(ctx, id, basesvc.UpdateData{Set: bson.M{"dueDate": newDue}})
	if err != nil {
		return nil, nil, err
	}

	var txn *financemodels.Transaction
	if updated.Value > 0 {
		txn, err = s.recordRevenue(ctx, sess, &updated, updated.Value, financemodels.TypeRenovacao)
		if err != nil {
			restore := basesvc.UpdateData{Unset: bson.M{"dueDate": ""}}
			if current.DueDate != nil {
				restore = basesvc.UpdateData{Set: bson.M{"dueDate": *current.DueDate}}
			}
			_, _ = s.UpdateById(ctx, id, restore)
			return nil, nil, err
		}
	}
	return &updated, txn, nil
}

// recordRevenue insere a transação com snapshot do nome do cliente
func (s *ClientService) recordRevenue(ctx context.Context, sess *authmodels.Session, client *clientmodels.Client, value float64, txnType string) (*financemodels.Transaction, error) {
	txn := financemodels.Transaction{
		ClientId:   client.ID,
		ClientName: client.Name,
		Value:      value,
		Date:       time.Now(),
		Type:       txnType,
		CreatedBy:  sess.Email,
	}
	created, err := s.transactions.InsertOne(ctx, txn)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByOwner retorna todos os clientes do dono, mais recentes primeiro
func (s *ClientService) FindByOwner(ctx context.Context, sess *authmodels.Session) ([]clientmodels.Client, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, ownerFilter(sess, nil), opts)
}

// ListPage retorna uma página de clientes do dono
func (s *ClientService) ListPage(ctx context.Context, sess *authmodels.Session, page, limit int64) (*basemodels.PaginateResult[clientmodels.Client], error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, ownerFilter(sess, nil), page, limit, opts)
}

// Subscribe abre uma assinatura de snapshot da lista de clientes do dono.
// O chamador é responsável por Close.
func (s *ClientService) Subscribe(sess *authmodels.Session) *basesvc.SnapshotStream[clientmodels.Client] {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return basesvc.NewSnapshotStream[clientmodels.Client](s.BaseServiceMongoImpl, ownerFilter(sess, nil), opts)
}

// ClientView acrescenta a classificação de ciclo de vida ao registro
type ClientView struct {
	clientmodels.Client
	Classification lifecycle.Classification `json:"classification"`
}

// Classified decora os clientes com o estado derivado do vencimento
func Classified(clients []clientmodels.Client, now time.Time) []ClientView {
	views := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		views = append(views, ClientView{Client: c, Classification: lifecycle.Classify(c.DueDate, now)})
	}
	return views
}

// DashboardStats agrega a carteira do dono por estado de ciclo de vida.
// ActiveCount e ActiveValue usam o conjunto ativo {active, today, expiring}.
type DashboardStats struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Today       int     `json:"today"`
	Expiring    int     `json:"expiring"`
	Expired     int     `json:"expired"`
	NoDate      int     `json:"noDate"`
	ActiveCount int     `json:"activeCount"`
	ActiveValue float64 `json:"activeValue"`
}

// Stats calcula o resumo do dashboard para a carteira do dono
func (s *ClientService) Stats(ctx context.Context, sess *authmodels.Session, now time.Time) (*DashboardStats, error) {
	clients, err := s.FindByOwner(ctx, sess)
	if err != nil {
		return nil, err
	}
	return ComputeStats(clients, now), nil
}

// ComputeStats é a parte pura do cálculo, testável sem banco
func ComputeStats(clients []clientmodels.Client, now time.Time) *DashboardStats {
	stats := &DashboardStats{Total: len(clients)}
	for _, c := range clients {
		class := lifecycle.Classify(c.DueDate, now)
		switch class.Status {
		case lifecycle.StatusActive:
			stats.Active++
		case lifecycle.StatusToday:
			stats.Today++
		case lifecycle.StatusExpiring:
			stats.Expiring++
		case lifecycle.StatusExpired:
			stats.Expired++
		case lifecycle.StatusNoDate:
			stats.NoDate++
		}
		if lifecycle.IsActiveStatus(class.Status) {
			stats.ActiveCount++
			stats.ActiveValue += c.Value
		}
	}
	return stats
}
