package memory

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-almacen/internal/domain/entity"
)

// DemoUser credenciales de los usuarios de demostración.
type DemoUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// DemoUsers un usuario por rol.
var DemoUsers = []DemoUser{
	{Name: "Admin Usuario", Email: "admin@wms.com", Password: "admin123", Role: entity.RoleAdmin},
	{Name: "Juan Supervisor", Email: "supervisor@wms.com", Password: "super123", Role: entity.RoleSupervisor},
	{Name: "Pedro Operario", Email: "operario@wms.com", Password: "oper123", Role: entity.RoleOperator},
	{Name: "María Vendedora", Email: "vendedor@wms.com", Password: "vend123", Role: entity.RoleSeller},
}

// DemoData catálogo inicial del almacén: productos, racks, movimientos, órdenes y usuarios.
// Las contraseñas se guardan con bcrypt usando el costo indicado (bcrypt.MinCost en tests).
func DemoData(bcryptCost int) (Data, error) {
	users := make([]*entity.User, 0, len(DemoUsers))
	for i, u := range DemoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
		if err != nil {
			return Data{}, fmt.Errorf("hash de %s: %w", u.Email, err)
		}
		users = append(users, &entity.User{
			ID:           int64(i + 1),
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
		})
	}

	return Data{
		Products:  demoProducts(),
		Locations: demoLocations(),
		Movements: []*entity.Movement{
			{ID: 1, Type: entity.MovementInbound, ProductID: 1, ProductName: "Producto A - Electrónico", Quantity: 50,
				Location: "A-01-01", Date: ts("2024-10-15T10:30:00"), User: "Pedro Operario", Reference: "FAC-001234"},
			{ID: 2, Type: entity.MovementOutbound, ProductID: 2, ProductName: "Producto B - Herramienta", Quantity: 15,
				Location: "B-02-03", Date: ts("2024-10-20T14:20:00"), User: "Pedro Operario", Reference: "PED-005678"},
		},
		Orders: demoOrders(),
		Users:  users,
	}, nil
}

func demoProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, SKU: "SKU001", EAN: "7501234567890", Name: "Producto A - Electrónico", Category: "Electrónica",
			Stock: 150, MinStock: 20, Location: "A-01-01", RotationType: entity.RotationHigh, Volume: entity.VolumeSmall,
			LastEntry: day("2024-10-15"), NextArrival: day("2024-11-05"), Description: "Dispositivo electrónico de alta rotación"},
		{ID: 2, SKU: "SKU002", EAN: "7501234567891", Name: "Producto B - Herramienta", Category: "Herramientas",
			Stock: 85, MinStock: 15, Location: "B-02-03", RotationType: entity.RotationMedium, Volume: entity.VolumeMedium,
			LastEntry: day("2024-10-20"), Description: "Herramienta de uso general"},
		{ID: 3, SKU: "SKU003", EAN: "7501234567892", Name: "Producto C - Material de Oficina", Category: "Oficina",
			Stock: 5, MinStock: 10, Location: "C-01-05", RotationType: entity.RotationLow, Volume: entity.VolumeSmall,
			LastEntry: day("2024-09-10"), NextArrival: day("2024-11-02"), Description: "Materiales de oficina diversos"},
		{ID: 4, SKU: "SKU004", EAN: "7501234567893", Name: "Producto D - Industrial", Category: "Industrial",
			Stock: 220, MinStock: 50, Location: "A-03-02", RotationType: entity.RotationHigh, Volume: entity.VolumeLarge,
			LastEntry: day("2024-10-25"), Description: "Componente industrial pesado"},
		{ID: 5, SKU: "SKU005", EAN: "7501234567894", Name: "Producto E - Consumible", Category: "Consumibles",
			Stock: 0, MinStock: 30, Location: "B-01-01", RotationType: entity.RotationHigh, Volume: entity.VolumeSmall,
			LastEntry: day("2024-09-30"), NextArrival: day("2024-11-03"), Description: "Producto consumible de alta demanda"},
	}
}

func demoLocations() []*entity.Location {
	return []*entity.Location{
		{ID: "A-01-01", Zone: "A", Rack: "01", Level: "01", Occupied: true, Capacity: 200},
		{ID: "A-01-02", Zone: "A", Rack: "01", Level: "02", Occupied: false, Capacity: 200},
		{ID: "A-02-01", Zone: "A", Rack: "02", Level: "01", Occupied: false, Capacity: 200},
		{ID: "A-03-02", Zone: "A", Rack: "03", Level: "02", Occupied: true, Capacity: 300},
		{ID: "B-01-01", Zone: "B", Rack: "01", Level: "01", Occupied: true, Capacity: 150},
		{ID: "B-02-03", Zone: "B", Rack: "02", Level: "03", Occupied: true, Capacity: 150},
		{ID: "C-01-05", Zone: "C", Rack: "01", Level: "05", Occupied: true, Capacity: 100},
	}
}

func demoOrders() []*entity.PickingOrder {
	return []*entity.PickingOrder{
		{ID: 1, OrderNumber: "PED-001", Status: entity.OrderPending, Priority: entity.PriorityHigh,
			CreatedAt: ts("2024-10-28T09:00:00"),
			Items: []entity.OrderItem{
				{ProductID: 1, ProductName: "Producto A - Electrónico", Quantity: 10, Location: "A-01-01"},
				{ProductID: 4, ProductName: "Producto D - Industrial", Quantity: 5, Location: "A-03-02"},
			}},
		{ID: 2, OrderNumber: "PED-002", Status: entity.OrderInProcess, Priority: entity.PriorityMedium,
			CreatedAt: ts("2024-10-28T10:30:00"), AssignedTo: "Pedro Operario",
			Items: []entity.OrderItem{
				{ProductID: 2, ProductName: "Producto B - Herramienta", Quantity: 3, Location: "B-02-03", Picked: 2},
			}},
		{ID: 3, OrderNumber: "PED-003", Status: entity.OrderCompleted, Priority: entity.PriorityLow,
			CreatedAt: ts("2024-10-27T15:00:00"), CompletedAt: tsp("2024-10-27T16:30:00"),
			AssignedTo: "Pedro Operario", StockApplied: true,
			Items: []entity.OrderItem{
				{ProductID: 1, ProductName: "Producto A - Electrónico", Quantity: 8, Location: "A-01-01", Picked: 8},
			}},
	}
}

func ts(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func day(s string) *time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return &t
}
