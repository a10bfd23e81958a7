package trade

// OrderStatus is the lifecycle state of a customer order. No transition
// graph is enforced: any member may follow any other.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "NEW"
	OrderStatusAccepted   OrderStatus = "ACCEPTED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// OrderStatusValues lists every OrderStatus member
func OrderStatusValues() []string {
	return []string{
		string(OrderStatusNew),
		string(OrderStatusAccepted),
		string(OrderStatusInProgress),
		string(OrderStatusCompleted),
		string(OrderStatusCancelled),
	}
}

// MaterialReserveStatus is the state of stock held for an order line
type MaterialReserveStatus string

const (
	MaterialReserveStatusReserved  MaterialReserveStatus = "RESERVED"
	MaterialReserveStatusIssued    MaterialReserveStatus = "ISSUED"
	MaterialReserveStatusReleased  MaterialReserveStatus = "RELEASED"
	MaterialReserveStatusCancelled MaterialReserveStatus = "CANCELLED"
)

// MaterialReserveStatusValues lists every MaterialReserveStatus member
func MaterialReserveStatusValues() []string {
	return []string{
		string(MaterialReserveStatusReserved),
		string(MaterialReserveStatusIssued),
		string(MaterialReserveStatusReleased),
		string(MaterialReserveStatusCancelled),
	}
}

// ServiceQuotingStatus is the state of an employee's time booked for an order line
type ServiceQuotingStatus string

const (
	ServiceQuotingStatusRequested ServiceQuotingStatus = "REQUESTED"
	ServiceQuotingStatusConfirmed ServiceQuotingStatus = "CONFIRMED"
	ServiceQuotingStatusDone      ServiceQuotingStatus = "DONE"
	ServiceQuotingStatusCancelled ServiceQuotingStatus = "CANCELLED"
)

// ServiceQuotingStatusValues lists every ServiceQuotingStatus member
func ServiceQuotingStatusValues() []string {
	return []string{
		string(ServiceQuotingStatusRequested),
		string(ServiceQuotingStatusConfirmed),
		string(ServiceQuotingStatusDone),
		string(ServiceQuotingStatusCancelled),
	}
}
