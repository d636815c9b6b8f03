package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/analytics-pro/internal/domain"
)

type fila struct {
	clave string
	valor int64
}

func filas(pares ...fila) []fila { return pares }

func claveDe(f fila) string          { return f.clave }
func valorDe(f fila) decimal.Decimal { return decimal.NewFromInt(f.valor) }

func TestGroupSum_ConservaOrdenDePrimeraAparicion(t *testing.T) {
	rows := filas(
		fila{"b", 1}, fila{"a", 2}, fila{"b", 3}, fila{"c", 4}, fila{"a", 5},
	)

	groups := groupSum(rows, nil, claveDe, valorDe)

	require.Len(t, groups, 3)
	assert.Equal(t, "b", groups[0].Key)
	assert.Equal(t, "a", groups[1].Key)
	assert.Equal(t, "c", groups[2].Key)
	assert.Equal(t, "4", groups[0].Value.String())
	assert.Equal(t, "7", groups[1].Value.String())
	assert.Equal(t, "4", groups[2].Value.String())
}

// TestGroupSum_ConservacionDeConteos verifica la propiedad de conservación:
// la suma de los conteos por grupo es igual al número de filas filtradas
// antes de agrupar.
func TestGroupSum_ConservacionDeConteos(t *testing.T) {
	rows := filas(
		fila{"a", 1}, fila{"b", 2}, fila{"a", 3}, fila{"c", 0}, fila{"b", 4}, fila{"a", 5},
	)
	filter := func(f fila) bool { return f.valor > 0 }

	groups := groupSum(rows, filter, claveDe, valorDe)

	var total int64
	for _, g := range groups {
		total += g.Count
	}
	assert.Equal(t, countWhere(rows, filter), total)
}

// TestHaving_DespuesDeAgrupar verifica que el umbral se aplica sobre el
// agregado del grupo, nunca sobre las filas fuente: dos filas de 30 suman 60
// y el grupo pasa un umbral de 50 aunque ninguna fila lo pase por sí sola.
func TestHaving_DespuesDeAgrupar(t *testing.T) {
	rows := filas(fila{"a", 30}, fila{"a", 30}, fila{"b", 40})

	groups := groupSum(rows, nil, claveDe, valorDe)
	groups = having(groups, func(g Group) bool { return g.Value.GreaterThan(decimal.NewFromInt(50)) })

	require.Len(t, groups, 1)
	assert.Equal(t, "a", groups[0].Key)
}

func TestOrderBy_DescendenteEstable(t *testing.T) {
	groups := []Group{
		{Key: "x", Value: decimal.NewFromInt(10)},
		{Key: "y", Value: decimal.NewFromInt(30)},
		{Key: "z", Value: decimal.NewFromInt(10)},
	}

	orderBy(groups, OrderValueDesc)

	assert.Equal(t, "y", groups[0].Key)
	// Empate 10-10: el orden original x antes que z se conserva (sort estable)
	assert.Equal(t, "x", groups[1].Key)
	assert.Equal(t, "z", groups[2].Key)
}

func TestTopN_RecortaYRespetaTamanos(t *testing.T) {
	groups := []Group{{Key: "a"}, {Key: "b"}, {Key: "c"}}

	assert.Len(t, topN(groups, 2), 2)
	assert.Len(t, topN(groups, 10), 3, "n mayor que los grupos distintos devuelve todos")
	assert.Len(t, topN(groups, 0), 3, "n cero no recorta")
}

func TestRatio_DenominadorCero(t *testing.T) {
	_, err := ratio(decimal.NewFromInt(100), decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)

	_, err = percent(decimal.NewFromInt(1), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	neg := DefaultOptions()
	neg.SLADays = -1
	assert.ErrorIs(t, neg.Validate(), domain.ErrInvalidConfiguration)

	neg = DefaultOptions()
	neg.HighValueThreshold = decimal.NewFromInt(-50_000)
	assert.ErrorIs(t, neg.Validate(), domain.ErrInvalidConfiguration)

	neg = DefaultOptions()
	neg.TopN = 0
	assert.ErrorIs(t, neg.Validate(), domain.ErrInvalidConfiguration)

	neg = DefaultOptions()
	neg.SlowMovingUnits = -10
	assert.ErrorIs(t, neg.Validate(), domain.ErrInvalidConfiguration)
}

// TestNew_RechazaConfiguracionInvalida verifica que una configuración sin
// sentido se rechaza al construir el motor, antes de cualquier cómputo.
func TestNew_RechazaConfiguracionInvalida(t *testing.T) {
	opt := DefaultOptions()
	opt.SLADays = -3

	engine, err := New(opt)

	assert.Nil(t, engine)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
