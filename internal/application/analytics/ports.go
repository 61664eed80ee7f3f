package analytics

import "context"

// Cache es la caché de lectura del dashboard. Las claves incluyen una versión global
// que se incrementa después de cada validación, así nunca se sirve un KPI anterior a un cambio de stock.
type Cache interface {
	BuildKey(ctx context.Context, parts ...string) (string, error)
	FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error
}

// passThrough se usa sin Redis: siempre consulta la base.
type passThrough struct{}

func (passThrough) BuildKey(_ context.Context, parts ...string) (string, error) {
	key := ""
	for i, p := range parts {
		if i > 0 {
			key += ":"
		}
		key += p
	}
	return key, nil
}

func (passThrough) FetchJSON(ctx context.Context, _ string, dest any, loader func(context.Context) (any, error)) error {
	v, err := loader(ctx)
	if err != nil {
		return err
	}
	return assign(dest, v)
}
