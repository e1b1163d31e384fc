package basesvc

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/events"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/logger"
)

// SnapshotStream entrega o snapshot completo de uma consulta a cada mudança na
// collection. O consumidor substitui a visão local inteira pelo snapshot — sem
// patch incremental. Mudanças em rajada são coalescidas: o worker reconsulta
// uma vez e entrega o estado mais recente.
type SnapshotStream[T any] struct {
	svc    *BaseServiceMongoImpl[T]
	filter interface{}
	opts   *options.FindOptions

	snapshots chan []T
	notify    chan struct{}
	stop      chan struct{}
	closeOnce sync.Once
}

var (
	streamsMu     sync.Mutex
	streamsByCol  = make(map[string][]chan struct{})
	routerStarted bool
)

// ensureRouter registra (uma única vez) o handler global que roteia eventos de
// mudança para os streams inscritos na collection correspondente.
func ensureRouter() {
	streamsMu.Lock()
	defer streamsMu.Unlock()
	if routerStarted {
		return
	}
	routerStarted = true

	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		streamsMu.Lock()
		listeners := append([]chan struct{}(nil), streamsByCol[e.CollectionName]...)
		streamsMu.Unlock()

		for _, n := range listeners {
			select {
			case n <- struct{}{}:
			default:
				// Já existe uma notificação pendente; o worker vai reconsultar.
			}
		}
	})
}

// NewSnapshotStream cria e inicia um stream de snapshots para o filtro dado.
// O primeiro snapshot é entregue logo após a inscrição.
func NewSnapshotStream[T any](svc *BaseServiceMongoImpl[T], filter interface{}, opts *options.FindOptions) *SnapshotStream[T] {
	ensureRouter()

	s := &SnapshotStream[T]{
		svc:       svc,
		filter:    filter,
		opts:      opts,
		snapshots: make(chan []T, 1),
		notify:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}

	colName := svc.Collection().Name()
	streamsMu.Lock()
	streamsByCol[colName] = append(streamsByCol[colName], s.notify)
	streamsMu.Unlock()

	go s.run()

	// Snapshot inicial
	s.notify <- struct{}{}

	return s
}

// Snapshots retorna o canal de snapshots completos
func (s *SnapshotStream[T]) Snapshots() <-chan []T {
	return s.snapshots
}

// Close cancela a inscrição e encerra o worker
func (s *SnapshotStream[T]) Close() {
	s.closeOnce.Do(func() {
		colName := s.svc.Collection().Name()
		streamsMu.Lock()
		listeners := streamsByCol[colName]
		for i, n := range listeners {
			if n == s.notify {
				streamsByCol[colName] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
		streamsMu.Unlock()
		close(s.stop)
	})
}

// run reconsulta a cada notificação e publica o snapshot mais recente.
// Se o consumidor ainda não leu o snapshot anterior, ele é substituído.
func (s *SnapshotStream[T]) run() {
	for {
		select {
		case <-s.stop:
			close(s.snapshots)
			return
		case <-s.notify:
			items, err := s.svc.Find(context.Background(), s.filter, s.opts)
			if err != nil {
				logger.GetErrorLogger().WithError(err).Warn("SnapshotStream: falha ao reconsultar snapshot")
				continue
			}

			select {
			case s.snapshots <- items:
			default:
				// Descarta o snapshot não lido e entrega o mais novo.
				select {
				case <-s.snapshots:
				default:
				}
				s.snapshots <- items
			}
		}
	}
}
