// Package financesvc - consultas e agregação das transações de receita.
// Transações nunca são criadas por aqui: nascem no cadastro/renovação de
// cliente (clientsvc). Este service apenas lista, resume e exclui.
package financesvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	authsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/service"
	basesvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/service"
	financemodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/finance/models"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
)

// FinanceService consulta as transações do dono da sessão
type FinanceService struct {
	*basesvc.BaseServiceMongoImpl[financemodels.Transaction]
}

// NewFinanceService cria o FinanceService a partir da collection registrada
func NewFinanceService() (*FinanceService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.MongoDB_ColNames.Transactions, common.ErrNotFound)
	}
	return &FinanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[financemodels.Transaction](coll),
	}, nil
}

// monthRange delimita o mês de referência no fuso local
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}

// ListMonth lista as transações do dono no mês informado, mais recentes primeiro
func (s *FinanceService) ListMonth(ctx context.Context, sess *authmodels.Session, year int, month time.Month) ([]financemodels.Transaction, error) {
	if err := authsvc.Can(sess, authsvc.VerbView, authsvc.ResourceTransaction, nil); err != nil {
		return nil, err
	}

	start, end := monthRange(year, month)
	filter := bson.M{
		"createdBy": sess.Email,
		"date":      bson.M{"$gte": start, "$lt": end},
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// Delete remove uma transação do dono. Única mutação permitida: o registro é
// imutável depois de criado.
func (s *FinanceService) Delete(ctx context.Context, sess *authmodels.Session, id primitive.ObjectID) error {
	if err := authsvc.Can(sess, authsvc.VerbDelete, authsvc.ResourceTransaction, nil); err != nil {
		return err
	}
	return s.DeleteOne(ctx, bson.M{"_id": id, "createdBy": sess.Email})
}

// Subscribe abre uma assinatura de snapshot das transações do dono
func (s *FinanceService) Subscribe(sess *authmodels.Session) *basesvc.SnapshotStream[financemodels.Transaction] {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return basesvc.NewSnapshotStream[financemodels.Transaction](s.BaseServiceMongoImpl, bson.M{"createdBy": sess.Email}, opts)
}

// MonthSummary resume a receita de um mês por tipo de transação
type MonthSummary struct {
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Total      float64 `json:"total"`
	Adesoes    float64 `json:"adesoes"`
	Renovacoes float64 `json:"renovacoes"`
	Count      int     `json:"count"`
}

// Summarize calcula o resumo do mês; parte pura, testável sem banco
func Summarize(transactions []financemodels.Transaction, year int, month time.Month) *MonthSummary {
	summary := &MonthSummary{Year: year, Month: int(month)}
	for _, txn := range transactions {
		summary.Total += txn.Value
		summary.Count++
		switch txn.Type {
		case financemodels.TypeAdesao:
			summary.Adesoes += txn.Value
		case financemodels.TypeRenovacao:
			summary.Renovacoes += txn.Value
		}
	}
	return summary
}

// SummarizeMonth consulta e resume o mês do dono
func (s *FinanceService) SummarizeMonth(ctx context.Context, sess *authmodels.Session, year int, month time.Month) (*MonthSummary, error) {
	transactions, err := s.ListMonth(ctx, sess, year, month)
	if err != nil {
		return nil, err
	}
	return Summarize(transactions, year, month), nil
}
