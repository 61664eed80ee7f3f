package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseProductCSV_LeeColumnasYDecimales(t *testing.T) {
	in := "SKU,Name,Category,cost,price,reorder_point,initial_stock,location\n" +
		"ab-1,Tornillo,Ferretería,1.25,2.5,10,50,WH/STOCK\n" +
		"ab-2,Tuerca,Ferretería,,,,,\n"

	rows, err := parseProductCSV(strings.NewReader(in), "utf-8")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "ab-1", rows[0].SKU)
	assert.Equal(t, "1.25", rows[0].Cost.String())
	require.NotNil(t, rows[0].ReorderPoint)
	assert.Equal(t, "10", rows[0].ReorderPoint.String())
	require.NotNil(t, rows[0].InitialStock)
	assert.Equal(t, "50", rows[0].InitialStock.String())
	assert.Equal(t, "WH/STOCK", rows[0].Location)

	assert.True(t, rows[1].Cost.IsZero())
	assert.Nil(t, rows[1].ReorderPoint)
	assert.Nil(t, rows[1].InitialStock)
}

func TestParseProductCSV_Latin1(t *testing.T) {
	raw := "sku,name,category\nX1,Café molido,Bebidas\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(raw)
	require.NoError(t, err)

	rows, err := parseProductCSV(bytes.NewBufferString(encoded), "latin1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Café molido", rows[0].Name)
}

func TestParseProductCSV_FaltaColumnaObligatoria(t *testing.T) {
	_, err := parseProductCSV(strings.NewReader("sku,name\nA,B\n"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestParseProductCSV_DecimalInvalido(t *testing.T) {
	_, err := parseProductCSV(strings.NewReader("sku,name,category,price\nA,B,C,abc\n"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fila 2")
}

func TestParseProductCSV_CharsetDesconocido(t *testing.T) {
	_, err := parseProductCSV(strings.NewReader("sku,name,category\n"), "ebcdic")
	require.Error(t, err)
}

func TestParseOverrides(t *testing.T) {
	got, err := parseOverrides([]string{"p-1=12", " p-2 = 0.5 "})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p-1", got[0].ProductID)
	assert.Equal(t, "12", got[0].Actual.String())
	assert.Equal(t, "p-2", got[1].ProductID)
	assert.Equal(t, "0.5", got[1].Actual.String())

	_, err = parseOverrides([]string{"sin-igual"})
	require.Error(t, err)
	_, err = parseOverrides([]string{"p=xx"})
	require.Error(t, err)
}

func TestRootCmd_RegistraComandos(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"migrate", "seed", "validate", "products:import"} {
		assert.True(t, names[want], want)
	}
}
