package pagedata

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Source один запрос данных страницы
type Source struct {
	Name      string
	Title     string // для сообщения пользователю
	Essential bool   // без этих данных страница не строится
	Load      func(ctx context.Context) (interface{}, error)
}

type Result struct {
	Data     map[string]interface{}
	Degraded []string
	Notice   string
}

func (r Result) Get(name string) interface{} {
	return r.Data[name]
}

func (r Result) IsDegraded(name string) bool {
	for _, degraded := range r.Degraded {
		if degraded == name {
			return true
		}
	}
	return false
}

// Load запускает все источники одновременно и дожидается каждого.
// Ошибка обязательного источника возвращается, ошибка необязательного попадает в Degraded.
func Load(ctx context.Context, sources ...Source) (Result, error) {
	result := Result{
		Data:     make(map[string]interface{}, len(sources)),
		Degraded: []string{},
	}
	mu := sync.Mutex{}
	var essentialErr error
	degradedTitles := []string{}

	g := errgroup.Group{}
	for _, source := range sources {
		source := source
		g.Go(func() error {
			data, err := load(ctx, source)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				result.Data[source.Name] = data
				return nil
			}
			logger := log.WithField("source", source.Name)
			if source.Essential {
				logger.WithError(err).Error("ошибка загрузки данных страницы")
				if essentialErr == nil {
					essentialErr = errors.Wrapf(err, "ошибка загрузки данных %q", source.Name)
				}
				return nil
			}
			logger.WithError(err).Warn("данные страницы загружены не полностью")
			result.Degraded = append(result.Degraded, source.Name)
			title := source.Title
			if title == "" {
				title = source.Name
			}
			degradedTitles = append(degradedTitles, title)
			return nil
		})
	}
	_ = g.Wait()
	if essentialErr != nil {
		return Result{}, essentialErr
	}
	if len(degradedTitles) > 0 {
		result.Notice = fmt.Sprintf("Часть данных недоступна: %s", strings.Join(degradedTitles, ", "))
	}
	return result, nil
}

func load(ctx context.Context, source Source) (data interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return source.Load(ctx)
}
