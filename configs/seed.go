package configs

import (
	"context"

	"lacarreta/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedCatalog loads the house menu on first boot. Skipped whenever the
// categories collection already holds documents, so restarts never duplicate
// the catalog and admin-created entries are never clobbered.
func SeedCatalog(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	categories := db.Collection("categories")

	count, err := categories.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("catalog already seeded", zap.Int64("categories", count))
		return nil
	}

	catDocs := make([]any, len(seedCategories))
	for i := range seedCategories {
		catDocs[i] = seedCategories[i]
	}
	if _, err := categories.InsertMany(ctx, catDocs); err != nil {
		return err
	}

	itemDocs := make([]any, len(seedMenuItems))
	for i := range seedMenuItems {
		item := seedMenuItems[i]
		item.ID = uuid.NewString()
		item.Available = true
		itemDocs[i] = item
	}
	if _, err := db.Collection("menu_items").InsertMany(ctx, itemDocs); err != nil {
		return err
	}

	logger.Info("catalog seeded",
		zap.Int("categories", len(seedCategories)),
		zap.Int("menu_items", len(seedMenuItems)))
	return nil
}

// Seed categories keep their well-known slug ids so menu items can reference
// them by a stable string.
var seedCategories = []entity.Category{
	{ID: "entradas", Name: "Entradas", Description: "Deliciosos aperitivos para comenzar tu experiencia gastronómica"},
	{ID: "platos-principales", Name: "Platos Principales", Description: "Los sabores auténticos del Perú en cada platillo principal"},
	{ID: "ceviches", Name: "Ceviches", Description: "Frescos ceviches preparados con pescado del día"},
	{ID: "postres", Name: "Postres", Description: "Dulces tradicionales peruanos para finalizar tu comida"},
	{ID: "bebidas", Name: "Bebidas", Description: "Refrescantes bebidas peruanas y tradicionales"},
}

var seedMenuItems = []entity.MenuItem{
	// entradas
	{Name: "Papa a la Huancaína", Description: "Papas amarillas bañadas en salsa de ají amarillo con queso fresco", Price: 12.00, CategoryID: "entradas"},
	{Name: "Anticuchos de Corazón", Description: "Brochetas de corazón de res marinadas en ají panca, servidas con papas cocidas", Price: 15.00, CategoryID: "entradas"},
	{Name: "Causa Limeña", Description: "Puré de papa amarilla rellena con pollo, palta y mayonesa", Price: 14.00, CategoryID: "entradas"},
	{Name: "Tamales Peruanos", Description: "Masa de maíz rellena con pollo o cerdo, envuelta en hojas de plátano", Price: 10.00, CategoryID: "entradas"},
	// ceviches
	{Name: "Ceviche de Pescado", Description: "Pescado fresco marinado en limón con cebolla roja, cilantro y ají", Price: 25.00, CategoryID: "ceviches"},
	{Name: "Ceviche Mixto", Description: "Pescado, camarones, pulpo y chicharrón de calamar en leche de tigre", Price: 32.00, CategoryID: "ceviches"},
	{Name: "Tiradito de Lenguado", Description: "Finas láminas de lenguado bañadas en ají amarillo y limón", Price: 28.00, CategoryID: "ceviches"},
	{Name: "Leche de Tigre", Description: "El jugo del ceviche servido como shot energizante", Price: 8.00, CategoryID: "ceviches"},
	// platos principales
	{Name: "Lomo Saltado", Description: "Tiras de lomo saltadas con cebolla, tomate, papas fritas y arroz", Price: 28.00, CategoryID: "platos-principales"},
	{Name: "Ají de Gallina", Description: "Pollo deshilachado en cremosa salsa de ají amarillo con nueces", Price: 22.00, CategoryID: "platos-principales"},
	{Name: "Arroz con Pollo", Description: "Arroz verde con pollo tierno, cilantro y arvejas", Price: 20.00, CategoryID: "platos-principales"},
	{Name: "Pollo a la Brasa", Description: "Pollo entero marinado y asado a la brasa, con papas y ensalada", Price: 35.00, CategoryID: "platos-principales"},
	{Name: "Cabrito Norteño", Description: "Tierno cabrito guisado con frejoles y arroz", Price: 32.00, CategoryID: "platos-principales"},
	{Name: "Rocoto Relleno", Description: "Rocoto relleno con carne molida, pasas y queso, gratinado", Price: 24.00, CategoryID: "platos-principales"},
	// postres
	{Name: "Suspiro a la Limeña", Description: "Dulce de leche con merengue de port y canela", Price: 8.00, CategoryID: "postres"},
	{Name: "Mazamorra Morada", Description: "Postre tradicional de maíz morado con frutas", Price: 7.00, CategoryID: "postres"},
	{Name: "Picarones", Description: "Buñuelos de zapallo y camote con miel de chancaca", Price: 9.00, CategoryID: "postres"},
	{Name: "Tres Leches", Description: "Bizcocho empapado en tres leches con canela", Price: 10.00, CategoryID: "postres"},
	// bebidas
	{Name: "Pisco Sour", Description: "Cóctel nacional del Perú con pisco, limón y clara de huevo", Price: 15.00, CategoryID: "bebidas"},
	{Name: "Chicha Morada", Description: "Refrescante bebida de maíz morado con piña y canela", Price: 6.00, CategoryID: "bebidas"},
	{Name: "Inca Kola", Description: "La bebida dorada del Perú", Price: 5.00, CategoryID: "bebidas"},
	{Name: "Agua de Coco", Description: "Refrescante agua de coco natural", Price: 7.00, CategoryID: "bebidas"},
	{Name: "Emoliente", Description: "Bebida caliente de hierbas medicinales", Price: 4.00, CategoryID: "bebidas"},
}
